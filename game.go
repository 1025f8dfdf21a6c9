package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/umbrella/audio"
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"github.com/milk9111/umbrella/ecs/entity"
	"github.com/milk9111/umbrella/ecs/system"
	"github.com/milk9111/umbrella/levels"
	"github.com/milk9111/umbrella/prefabs"
	"golang.org/x/image/colornames"
)

type Options struct {
	Level string
	Debug bool
	Glide bool
	Mute  bool
}

type Game struct {
	opts Options

	player prefabs.PlayerSpec
	camera prefabs.CameraSpec
	level  prefabs.LevelSpec

	scene     *entity.Scene
	scheduler *ecs.Scheduler
	view      *system.CameraSystem

	sound   *audio.Player
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	debug   *debugTools

	paused  bool
	restart string
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts, sound: audio.NewPlayer()}

	var err error
	if g.player, err = prefabs.LoadPlayerSpec(); err != nil {
		return nil, err
	}
	if g.camera, err = prefabs.LoadCameraSpec(); err != nil {
		return nil, err
	}
	if g.level, err = prefabs.LoadLevelSpec(opts.Level); err != nil {
		return nil, err
	}

	if !opts.Mute {
		if err := g.sound.Init(); err != nil {
			log.Printf("audio: %v (continuing without sound)", err)
		}
	}

	if opts.Debug {
		watcher, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.debug = newDebugTools(opts.Debug)
	g.pauseUI = NewPauseUI(g)
	if err := g.rebuild(); err != nil {
		return nil, err
	}
	return g, nil
}

// RestartLevel is called by the controller when the player dies, runs out
// of currency or leaves the level. The rebuild waits for the frame to end.
func (g *Game) RestartLevel(reason string) {
	if g.restart == "" {
		g.restart = reason
	}
}

func (g *Game) rebuild() error {
	scene, err := entity.BuildScene(g.level, entity.SceneOptions{
		Player: g.player,
		Camera: g.camera,
		PlayerOptions: entity.PlayerOptions{
			Level:     g,
			GlideItem: g.opts.Glide,
			Debug:     g.opts.Debug,
		},
	})
	if err != nil {
		return err
	}

	killY := scene.Controller.Settings().KillPlaneY
	systems := system.Gameplay(system.GameplayOptions{Audio: g.sound, KillY: killY})
	systems = append(systems, system.NewRenderSystem(), system.NewDebugSystem(g.opts.Debug))

	g.scene = scene
	g.scheduler = ecs.NewScheduler(systems...)
	g.view = nil
	for _, s := range systems {
		if cs, ok := s.(*system.CameraSystem); ok {
			g.view = cs
		}
	}
	g.sound.StopAll()
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	g.scene.World.SetPaused(g.paused)
	g.scheduler.Update(g.scene.World)
	if g.paused {
		g.pauseUI.Update()
	}

	g.debug.Update(g.scene)
	g.pollReload()

	if g.restart != "" {
		log.Printf("game: restarting %s: %s", g.level.Name, g.restart)
		g.restart = ""
		if err := g.rebuild(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("hot reload: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangePlayer:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		settings, err := spec.Settings()
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		if kp := g.level.KillPlaneY; kp != nil {
			settings.KillPlaneY = *kp
		}
		if err := g.scene.Controller.SetSettings(settings); err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		g.player = spec
		log.Printf("hot reload: player tuning updated")
	case prefabs.ChangeCamera:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		g.camera = spec
		if cam, ok := ecs.Get(g.scene.World, g.scene.Camera, component.CameraComponent.Kind()); ok {
			cam.Zoom, cam.Smoothness = spec.Zoom, spec.Smoothness
		}
	case prefabs.ChangeLevel:
		if levels.Clean(change.Path) != levels.Clean(g.opts.Level) {
			return
		}
		spec, err := prefabs.LoadLevelSpec(g.opts.Level)
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		g.level = spec
		g.RestartLevel("level file changed")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightsteelblue)

	camX, camY, zoom := 0.0, 0.0, 1.0
	if g.view != nil {
		camX, camY, zoom = g.view.View(g.scene.World)
	}
	g.scheduler.Draw(g.scene.World, screen, camX, camY, zoom)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ctrl := g.scene.Controller
	coins := 0
	if wallet, ok := ecs.Get(g.scene.World, g.scene.Player, component.WalletComponent.Kind()); ok {
		coins = wallet.Coins
	}
	umbrella := "-"
	if ctrl.HasGlideItem() {
		umbrella = "umbrella"
	}
	hud := fmt.Sprintf("hp %d/%d  coins %d  %s", ctrl.Health(), ctrl.Settings().MaxHealth, coins, umbrella)
	ebitenutil.DebugPrintAt(screen, hud, 10, common.BaseHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.sound.Close()
}
