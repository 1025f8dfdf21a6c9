package main

import (
	"fmt"
	"log"

	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"github.com/milk9111/umbrella/ecs/entity"
	"github.com/milk9111/umbrella/ecs/system"
	"github.com/milk9111/umbrella/levels"
	"github.com/milk9111/umbrella/prefabs"
)

// Result is the outcome of one scenario.
type Result struct {
	Scenario string
	Frames   int
	Restarts int
	Failures []string
}

func (r Result) Passed() bool { return len(r.Failures) == 0 }

// runner plays a scenario headless. It stands in for the game: it feeds
// the input system and rebuilds the scene when the controller restarts the
// level.
type runner struct {
	sc     Scenario
	drv    driver
	player prefabs.PlayerSpec
	level  prefabs.LevelSpec

	scene     *entity.Scene
	scheduler *ecs.Scheduler
	frame     int
	inputErr  error
	restart   string
	restarts  int
	verbose   bool
}

// Run plays sc and checks its expectations.
func Run(sc Scenario, verbose bool) (Result, error) {
	r := &runner{sc: sc, verbose: verbose}

	var err error
	if r.player, err = prefabs.LoadPlayerSpec(); err != nil {
		return Result{}, err
	}
	levelName := sc.Level
	if levelName == "" {
		levelName = levels.Default
	}
	if r.level, err = prefabs.LoadLevelSpec(levelName); err != nil {
		return Result{}, err
	}

	r.drv = timeline(sc.Input)
	if sc.Script != "" {
		if r.drv, err = loadScriptDriver(sc.Script); err != nil {
			return Result{}, err
		}
	}

	if err := r.rebuild(); err != nil {
		return Result{}, err
	}
	return r.play()
}

func (r *runner) rebuild() error {
	scene, err := entity.BuildScene(r.level, entity.SceneOptions{
		Player: r.player,
		PlayerOptions: entity.PlayerOptions{
			Level:     r,
			GlideItem: r.sc.GlideItem,
			Debug:     r.verbose,
		},
	})
	if err != nil {
		return err
	}
	r.scene = scene
	r.scheduler = ecs.NewScheduler(system.Gameplay(system.GameplayOptions{
		Input: r,
		KillY: scene.Controller.Settings().KillPlaneY,
	})...)
	return nil
}

func (r *runner) RestartLevel(reason string) {
	if r.restart == "" {
		r.restart = reason
	}
}

// Buttons implements system.ButtonSource for the frame being simulated.
func (r *runner) Buttons() character.Buttons {
	b, err := r.drv.Buttons(r.frame)
	if err != nil && r.inputErr == nil {
		r.inputErr = err
	}
	return b
}

func (r *runner) play() (Result, error) {
	res := Result{Scenario: r.sc.Name, Frames: r.sc.Frames}
	due := make(map[int][]Expect)
	for _, ex := range r.sc.Expect {
		due[ex.Frame] = append(due[ex.Frame], ex)
	}

	for r.frame = 0; r.frame < r.sc.Frames; r.frame++ {
		r.scheduler.Update(r.scene.World)
		if r.inputErr != nil {
			return res, r.inputErr
		}
		if r.restart != "" {
			if r.verbose {
				log.Printf("feelcheck: %s: frame %d: restart: %s", r.sc.Name, r.frame, r.restart)
			}
			r.restart = ""
			r.restarts++
			if err := r.rebuild(); err != nil {
				return res, err
			}
		}
		for _, ex := range due[r.frame] {
			res.Failures = append(res.Failures, r.check(ex)...)
		}
	}
	res.Restarts = r.restarts
	return res, nil
}

func (r *runner) check(ex Expect) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf("frame %d: ", ex.Frame)+fmt.Sprintf(format, args...))
	}

	ctrl := r.scene.Controller
	pos := "(no body)"
	if body, ok := ecs.Get(r.scene.World, r.scene.Player, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		p := body.Body.Position()
		pos = fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)

		if ex.MinX != nil && p.X < *ex.MinX {
			fail("x %.2f below %.2f", p.X, *ex.MinX)
		}
		if ex.MaxX != nil && p.X > *ex.MaxX {
			fail("x %.2f above %.2f", p.X, *ex.MaxX)
		}
		if ex.MinY != nil && p.Y < *ex.MinY {
			fail("y %.2f below %.2f", p.Y, *ex.MinY)
		}
		if ex.MaxY != nil && p.Y > *ex.MaxY {
			fail("y %.2f above %.2f", p.Y, *ex.MaxY)
		}
	}

	if ex.State != "" && ctrl.State().String() != ex.State {
		fail("state %s, want %s at %s", ctrl.State(), ex.State, pos)
	}
	if ex.SubState != "" && ctrl.SubState().String() != ex.SubState {
		fail("sub-state %s, want %s", ctrl.SubState(), ex.SubState)
	}
	if ex.Grounded != nil && ctrl.Grounded() != *ex.Grounded {
		fail("grounded %v, want %v at %s", ctrl.Grounded(), *ex.Grounded, pos)
	}
	if ex.GlideItem != nil && ctrl.HasGlideItem() != *ex.GlideItem {
		fail("glide item %v, want %v", ctrl.HasGlideItem(), *ex.GlideItem)
	}
	if ex.Health != nil && ctrl.Health() != *ex.Health {
		fail("health %d, want %d", ctrl.Health(), *ex.Health)
	}
	if ex.MinRestarts != nil && r.restarts < *ex.MinRestarts {
		fail("%d restarts, want at least %d", r.restarts, *ex.MinRestarts)
	}
	return failures
}
