package entity

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"github.com/milk9111/umbrella/ecs/system"
	"github.com/milk9111/umbrella/prefabs"
)

const testLevel = `
name: test
spawn: {x: 0, y: 2}
solids:
  - {x: 0, y: -0.5, width: 10, height: 1}
platforms:
  - {x: 8, y: 0, width: 2, height: 0.5, speed: 1}
pickups:
  - {x: 3, y: 1, width: 0.5, height: 0.5, kind: umbrella}
hazards:
  - {x: -3, y: 0.2, width: 1, height: 0.4, damage: 1, drop_percentage: 50}
fans:
  - x: 5
    y: 3
    width: 2
    height: 4
    direction: {x: 0, y: 1}
    wind: 10
pitfalls:
  - {x: 0, y: -10, width: 40, height: 1, respawn: {x: 0, y: 0}}
bouncers:
  - {x: -6, y: 0.2, width: 1, height: 0.4, impulse: {x: 0, y: 15}}
`

func newPhysicsWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(common.Gravity))
	return w
}

func mustLevel(t *testing.T, data string) prefabs.LevelSpec {
	t.Helper()
	spec, err := prefabs.ParseLevelSpec("test.yaml", []byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return spec
}

func count[T any](w *ecs.World, handle component.ComponentHandle[T]) int {
	n := 0
	ecs.ForEach(w, handle.Kind(), func(ecs.Entity, *T) { n++ })
	return n
}

func TestBuildLevel(t *testing.T) {
	w := newPhysicsWorld()
	lvl, err := BuildLevel(w, mustLevel(t, testLevel))
	if err != nil {
		t.Fatal(err)
	}
	if len(lvl.Entities) != 7 {
		t.Fatalf("expected 7 entities, got %d", len(lvl.Entities))
	}
	if lvl.Spawn != (cp.Vector{X: 0, Y: 2}) {
		t.Fatalf("unexpected spawn %v", lvl.Spawn)
	}

	counts := map[string]int{
		"pickup":   count(w, component.PickupComponent),
		"hazard":   count(w, component.HazardComponent),
		"fan":      count(w, component.FanComponent),
		"pitfall":  count(w, component.PitfallComponent),
		"bouncer":  count(w, component.BouncerComponent),
		"platform": count(w, component.MovingPlatformComponent),
	}
	for name, n := range counts {
		if n != 1 {
			t.Errorf("expected one %s, got %d", name, n)
		}
	}

	platform, _ := ecs.First(w, component.MovingPlatformComponent.Kind())
	mp, _ := ecs.Get(w, platform, component.MovingPlatformComponent.Kind())
	if len(mp.Waypoints) != 1 || mp.Waypoints[0] != (cp.Vector{X: 8}) {
		t.Fatalf("platform without waypoints should hold its position, got %v", mp.Waypoints)
	}

	if !w.PhysicsWorld().GroundAt(cp.Vector{X: 1, Y: 0.05}, 0.1) {
		t.Fatalf("solid should be registered as ground")
	}
}

func TestBuildLevelNeedsPhysics(t *testing.T) {
	_, err := BuildLevel(ecs.NewWorld(), mustLevel(t, testLevel))
	if !errors.Is(err, ErrNoPhysicsWorld) {
		t.Fatalf("expected ErrNoPhysicsWorld, got %v", err)
	}
}

func TestFanFrom(t *testing.T) {
	tests := []struct {
		name       string
		spec       prefabs.FanSpec
		wantOrigin cp.Vector
		wantReach  float64
	}{
		{
			name:       "upward",
			spec:       prefabs.FanSpec{Box: prefabs.Box{X: 5, Y: 3, Width: 2, Height: 4}, Direction: prefabs.Vec{Y: 1}},
			wantOrigin: cp.Vector{X: 5, Y: 1},
			wantReach:  4,
		},
		{
			name:       "leftward",
			spec:       prefabs.FanSpec{Box: prefabs.Box{X: 0, Y: 0, Width: 6, Height: 2}, Direction: prefabs.Vec{X: -2}},
			wantOrigin: cp.Vector{X: 3},
			wantReach:  6,
		},
		{
			name:       "no_direction_blows_up",
			spec:       prefabs.FanSpec{Box: prefabs.Box{Width: 1, Height: 2}},
			wantOrigin: cp.Vector{Y: -1},
			wantReach:  2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fan := fanFrom(tc.spec)
			if fan.Origin != tc.wantOrigin || fan.MaxDistance != tc.wantReach {
				t.Fatalf("got origin %v reach %v, want %v %v", fan.Origin, fan.MaxDistance, tc.wantOrigin, tc.wantReach)
			}
			if l := fan.Direction.Length(); l < 0.999 || l > 1.001 {
				t.Fatalf("direction should be normalised, got %v", fan.Direction)
			}
		})
	}
}

func TestNewPlayer(t *testing.T) {
	w := newPhysicsWorld()
	killY := -7.0
	spec := prefabs.DefaultPlayerSpec()
	spec.StartCoins = 4

	e, ctrl, err := NewPlayer(w, spec, cp.Vector{X: 1, Y: 2}, PlayerOptions{KillPlaneY: &killY, GlideItem: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := ctrl.Settings().KillPlaneY; got != killY {
		t.Fatalf("kill plane override ignored: %v", got)
	}
	if !ctrl.HasGlideItem() {
		t.Fatalf("player should start with the glide item")
	}
	if ctrl.State() != character.StateIdle {
		t.Fatalf("expected idle, got %v", ctrl.State())
	}

	wallet, ok := ecs.Get(w, e, component.WalletComponent.Kind())
	if !ok || wallet.Coins != 4 {
		t.Fatalf("wallet not seeded: %+v", wallet)
	}
	if tagged, ok := ecs.First(w, component.PlayerTagComponent.Kind()); !ok || tagged != e {
		t.Fatalf("player tag missing")
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body.Position() != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("body not placed at spawn")
	}
}

func TestNewPlayerRejectsBadTuning(t *testing.T) {
	w := newPhysicsWorld()
	spec := prefabs.DefaultPlayerSpec()
	spec.Tuning.JumpSpeed = 0
	if _, _, err := NewPlayer(w, spec, cp.Vector{}, PlayerOptions{}); !errors.Is(err, character.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("failed build should not leave entities behind")
	}
}

func TestNewCameraDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, prefabs.CameraSpec{}, cp.Vector{X: 3, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	if cam.Zoom != 1 || cam.Smoothness != 0.15 || cam.X != 3 || cam.Y != 4 {
		t.Fatalf("unexpected camera %+v", cam)
	}
}

type idle struct{}

func (idle) Buttons() character.Buttons { return character.Buttons{} }

func TestSceneSettlesOnGround(t *testing.T) {
	scene, err := BuildScene(mustLevel(t, testLevel), SceneOptions{
		Player: prefabs.DefaultPlayerSpec(),
		Camera: prefabs.CameraSpec{Zoom: 1, Smoothness: 0.2},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := ecs.NewScheduler(system.Gameplay(system.GameplayOptions{Input: idle{}, KillY: -20})...)
	for i := 0; i < 120; i++ {
		s.Update(scene.World)
	}

	if !scene.Controller.Grounded() {
		t.Fatalf("player should have landed, state %s", scene.Controller)
	}
	if scene.Controller.State() != character.StateIdle {
		t.Fatalf("expected idle after landing, got %v", scene.Controller.State())
	}
	cam, _ := ecs.Get(scene.World, scene.Camera, component.CameraComponent.Kind())
	if cam.Y > 2 || cam.Y < 0 {
		t.Fatalf("camera should follow the player down, at %v", cam.Y)
	}
}
