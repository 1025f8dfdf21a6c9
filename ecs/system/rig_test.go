package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

type rig struct {
	t      *testing.T
	w      *ecs.World
	pw     *ecs.PhysicsWorld
	player ecs.Entity
	body   *cp.Body
	ctrl   *character.Controller
	audio  *component.Audio
	wallet *component.Wallet
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// newRig builds a world with a 1x1 player centred on pos.
func newRig(t *testing.T, pos cp.Vector) *rig {
	t.Helper()
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(-25)
	w.SetPhysicsWorld(pw)

	e := ecs.CreateEntity(w)
	body := pw.AddCharacter(e, pos, 1, 1, 1)
	probe := &component.GroundProbe{OffsetY: -0.5, Radius: 0.1}
	audio := &component.Audio{}
	wallet := &component.Wallet{}
	ctrl, err := character.New(ecs.NewCharacterBody(pw, body), character.Options{
		Settings: character.DefaultSettings(),
		Ground: character.GroundFunc(func() bool {
			return pw.GroundAt(body.Position().Add(cp.Vector{X: probe.OffsetX, Y: probe.OffsetY}), probe.Radius)
		}),
		Audio:    audio,
		Wallet:   wallet,
		Launcher: NewProjectileLauncher(w),
	})
	if err != nil {
		t.Fatal(err)
	}

	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Kind: component.BodyCharacter, Width: 1, Height: 1}))
	mustAdd(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Controller: ctrl}))
	mustAdd(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(w, e, component.GroundProbeComponent.Kind(), probe))
	mustAdd(t, ecs.Add(w, e, component.AudioComponent.Kind(), audio))
	mustAdd(t, ecs.Add(w, e, component.WalletComponent.Kind(), wallet))

	return &rig{t: t, w: w, pw: pw, player: e, body: body, ctrl: ctrl, audio: audio, wallet: wallet}
}

func (r *rig) floor(bb cp.BB) ecs.Entity {
	e := ecs.CreateEntity(r.w)
	r.pw.AddSolid(e, bb)
	return e
}

// sensor adds a trigger volume carrying value as its component.
func sensor[T any](r *rig, bb cp.BB, kind component.ComponentHandle[T], value *T) ecs.Entity {
	r.t.Helper()
	e := ecs.CreateEntity(r.w)
	r.pw.AddSensor(e, bb)
	c := cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
	mustAdd(r.t, ecs.Add(r.w, e, component.TransformComponent.Kind(), &component.Transform{X: c.X, Y: c.Y}))
	mustAdd(r.t, ecs.Add(r.w, e, kind.Kind(), value))
	return e
}

func (r *rig) run(frames int, systems ...ecs.System) {
	s := ecs.NewScheduler(systems...)
	for i := 0; i < frames; i++ {
		s.Update(r.w)
	}
}

type fixedButtons struct {
	b *character.Buttons
}

func (f fixedButtons) Buttons() character.Buttons { return *f.b }
