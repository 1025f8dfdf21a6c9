package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"github.com/milk9111/umbrella/ecs/system"
	"github.com/milk9111/umbrella/prefabs"
)

const flashInterval = 4

type PlayerOptions struct {
	Level character.Level
	// KillPlaneY overrides the prefab's kill plane when set.
	KillPlaneY *float64
	// GlideItem starts the player already holding the umbrella.
	GlideItem bool
	Debug     bool
}

// NewPlayer builds the player from spec with its body centred on spawn.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, spawn cp.Vector, opts PlayerOptions) (ecs.Entity, *character.Controller, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, nil, ErrNoPhysicsWorld
	}
	settings, err := spec.Settings()
	if err != nil {
		return 0, nil, err
	}
	if opts.KillPlaneY != nil {
		settings.KillPlaneY = *opts.KillPlaneY
	}

	e := ecs.CreateEntity(w)
	col := spec.Collider
	body := pw.AddCharacter(e, spawn, col.Width, col.Height, col.Mass)

	probe := &component.GroundProbe{
		OffsetX: spec.GroundProbe.OffsetX,
		OffsetY: spec.GroundProbe.OffsetY,
		Radius:  spec.GroundProbe.Radius,
	}
	anim := &component.Animation{}
	audio := &component.Audio{}
	wallet := &component.Wallet{Coins: spec.StartCoins}

	ctrl, err := character.New(ecs.NewCharacterBody(pw, body), character.Options{
		Settings: settings,
		Ground: character.GroundFunc(func() bool {
			return pw.GroundAt(body.Position().Add(cp.Vector{X: probe.OffsetX, Y: probe.OffsetY}), probe.Radius)
		}),
		Animator: anim,
		Audio:    audio,
		Level:    opts.Level,
		Wallet:   wallet,
		Launcher: system.NewProjectileLauncher(w),
		Debug:    opts.Debug,
	})
	if err != nil {
		pw.Remove(e)
		ecs.DestroyEntity(w, e)
		return 0, nil, fmt.Errorf("player: %w", err)
	}
	if opts.GlideItem {
		ctrl.GrantGlideItem()
	}

	err = firstErr(
		func() error {
			return attach(w, e, component.PlayerTagComponent, &component.PlayerTag{}, "player tag")
		},
		func() error {
			return attach(w, e, component.PlayerComponent, &component.Player{Controller: ctrl}, "player")
		},
		func() error {
			return attach(w, e, component.TransformComponent, &component.Transform{X: spawn.X, Y: spawn.Y}, "transform")
		},
		func() error {
			return attach(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Kind: component.BodyCharacter, Width: col.Width, Height: col.Height}, "physics body")
		},
		func() error { return attach(w, e, component.InputComponent, &component.Input{}, "input") },
		func() error { return attach(w, e, component.GroundProbeComponent, probe, "ground probe") },
		func() error { return attach(w, e, component.AnimationComponent, anim, "animation") },
		func() error { return attach(w, e, component.AudioComponent, audio, "audio") },
		func() error { return attach(w, e, component.WalletComponent, wallet, "wallet") },
		func() error {
			return attach(w, e, component.WhiteFlashComponent, &component.WhiteFlash{Interval: flashInterval}, "white flash")
		},
		func() error {
			return attach(w, e, component.RenderableComponent, &component.Renderable{Color: spec.Color.RGBA8()}, "renderable")
		},
		func() error {
			return attach(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.RenderLayer.Index}, "render layer")
		},
	)
	if err != nil {
		return 0, nil, fmt.Errorf("player: %w", err)
	}
	return e, ctrl, nil
}
