package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPlayerControllerSystem(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
		want   character.StateID
	}{
		{"jumps_on_press", false, character.StateJumping},
		{"frozen_while_paused", true, character.StateIdle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, cp.Vector{Y: 0.5})
			r.floor(cp.BB{L: -10, B: -1, R: 10, T: 0})
			buttons := &character.Buttons{}
			systems := []ecs.System{
				NewInputSystem(fixedButtons{buttons}),
				NewPlayerControllerSystem(),
				NewPhysicsSystem(),
			}

			r.run(2, systems...)
			if !r.ctrl.Grounded() {
				t.Fatalf("player should be standing on the floor")
			}

			r.w.SetPaused(tc.paused)
			buttons.Jump = true
			r.run(1, systems...)
			if got := r.ctrl.State(); got != tc.want {
				t.Fatalf("state = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestPhysicsSystemSyncsTransforms(t *testing.T) {
	r := newRig(t, cp.Vector{X: 1, Y: 5})
	r.run(10, NewPhysicsSystem())

	tr, _ := ecs.Get(r.w, r.player, component.TransformComponent.Kind())
	pos := r.body.Position()
	if tr.X != pos.X || tr.Y != pos.Y {
		t.Fatalf("transform (%v, %v) does not follow body %v", tr.X, tr.Y, pos)
	}
	if tr.Y >= 5 {
		t.Fatalf("player should have fallen, y=%v", tr.Y)
	}

	r.w.SetPaused(true)
	before := r.body.Position()
	r.run(10, NewPhysicsSystem())
	if r.body.Position() != before {
		t.Fatalf("physics advanced while paused")
	}
}

func TestPlatformFollowsWaypoints(t *testing.T) {
	r := newRig(t, cp.Vector{X: 50, Y: 50})
	e := ecs.CreateEntity(r.w)
	body := r.pw.AddPlatform(e, cp.Vector{}, 2, 0.5)
	mp := &component.MovingPlatform{Waypoints: []cp.Vector{{X: 1}, {X: 0}}, Speed: 30}
	mustAdd(t, ecs.Add(r.w, e, component.MovingPlatformComponent.Kind(), mp))
	mustAdd(t, ecs.Add(r.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Kind: component.BodyPlatform, Width: 2, Height: 0.5}))

	platforms := NewPlatformSystem()
	steps := []struct {
		x      float64
		target int
	}{
		{0.5, 0},
		{1, 1},
		{0.5, 1},
		{0, 0},
	}
	for i, st := range steps {
		r.run(1, platforms)
		if !near(body.Position().X, st.x, 1e-9) || mp.Target != st.target {
			t.Fatalf("step %d: x=%v target=%d, want x=%v target=%d", i, body.Position().X, mp.Target, st.x, st.target)
		}
		if !near(math.Abs(mp.Delta.X), 0.5, 1e-9) {
			t.Fatalf("step %d: delta %v", i, mp.Delta)
		}
	}
}

func TestPlatformCarriesPassenger(t *testing.T) {
	r := newRig(t, cp.Vector{Y: 0.76})
	e := ecs.CreateEntity(r.w)
	body := r.pw.AddPlatform(e, cp.Vector{}, 4, 0.5)
	mustAdd(t, ecs.Add(r.w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{Waypoints: []cp.Vector{{X: 5}}, Speed: 1}))
	mustAdd(t, ecs.Add(r.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Kind: component.BodyPlatform, Width: 4, Height: 0.5}))

	platforms := NewPlatformSystem()
	r.run(60, NewPhysicsSystem(), platforms)

	if len(platforms.Passengers(e)) != 1 {
		t.Fatalf("expected the player to ride the platform")
	}
	if !near(body.Position().X, 1, 1e-6) {
		t.Fatalf("platform x = %v, want 1", body.Position().X)
	}
	if !near(r.body.Position().X, body.Position().X, 0.1) {
		t.Fatalf("player x = %v did not follow platform x = %v", r.body.Position().X, body.Position().X)
	}
}

func TestPlatformIgnoresSideContact(t *testing.T) {
	r := newRig(t, cp.Vector{X: 2.4, Y: 0})
	e := ecs.CreateEntity(r.w)
	body := r.pw.AddPlatform(e, cp.Vector{}, 4, 0.5)
	mustAdd(t, ecs.Add(r.w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{Waypoints: []cp.Vector{{Y: -5}}, Speed: 1}))
	mustAdd(t, ecs.Add(r.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Kind: component.BodyPlatform, Width: 4, Height: 0.5}))

	platforms := NewPlatformSystem()
	r.run(1, NewPhysicsSystem(), platforms)
	if len(platforms.Passengers(e)) != 0 {
		t.Fatalf("touching the side must not make a passenger")
	}
}

func TestPickupSystem(t *testing.T) {
	t.Run("umbrella", func(t *testing.T) {
		r := newRig(t, cp.Vector{})
		pickup := sensor(r, cp.BB{L: -1, B: -1, R: 1, T: 1}, component.PickupComponent, &component.Pickup{Kind: component.PickupUmbrella})

		r.run(1, NewPhysicsSystem(), NewPickupSystem())

		if !r.ctrl.HasGlideItem() {
			t.Fatalf("umbrella should grant the glide item")
		}
		if ecs.IsAlive(r.w, pickup) {
			t.Fatalf("pickup should be consumed")
		}
		if len(r.audio.Starts) != 1 || r.audio.Starts[0] != character.CuePickup {
			t.Fatalf("expected a pickup cue, got %v", r.audio.Starts)
		}
	})

	t.Run("coin", func(t *testing.T) {
		r := newRig(t, cp.Vector{})
		sensor(r, cp.BB{L: -1, B: -1, R: 1, T: 1}, component.PickupComponent, &component.Pickup{Kind: component.PickupCoin, Value: 3})

		r.run(2, NewPhysicsSystem(), NewPickupSystem())

		if r.wallet.Coins != 3 {
			t.Fatalf("wallet = %d, want 3", r.wallet.Coins)
		}
		if r.ctrl.HasGlideItem() {
			t.Fatalf("coins must not grant glide")
		}
	})
}

func TestHazardSystem(t *testing.T) {
	r := newRig(t, cp.Vector{})
	r.wallet.Coins = 10
	sensor(r, cp.BB{L: -1, B: -1, R: 1, T: 1}, component.HazardComponent, &component.Hazard{Damage: 1, DropPercentage: 50})
	hazards := NewHazardSystem()
	maxHealth := character.DefaultSettings().MaxHealth

	r.run(1, NewPhysicsSystem(), hazards)
	if r.ctrl.Health() != maxHealth-1 || !r.ctrl.Invincible() {
		t.Fatalf("health=%d invincible=%v after first hit", r.ctrl.Health(), r.ctrl.Invincible())
	}
	if r.wallet.Coins != 5 {
		t.Fatalf("wallet = %d, want 5", r.wallet.Coins)
	}

	r.run(5, NewPhysicsSystem(), hazards)
	if r.ctrl.Health() != maxHealth-1 {
		t.Fatalf("invincibility should block repeat hits, health=%d", r.ctrl.Health())
	}
}

func TestFanForce(t *testing.T) {
	tests := []struct {
		name string
		fan  component.Fan
		pos  cp.Vector
		want cp.Vector
	}{
		{
			"vertical_at_origin",
			component.Fan{Direction: cp.Vector{X: 1}, Wind: 5, Upward: 5, MaxDistance: 4},
			cp.Vector{},
			cp.Vector{X: 5, Y: 5},
		},
		{
			"vertical_out_of_reach",
			component.Fan{Direction: cp.Vector{X: 1}, Wind: 5, Upward: 5, MaxDistance: 4},
			cp.Vector{Y: 10},
			cp.Vector{},
		},
		{
			"sideways_halfway",
			component.Fan{Direction: cp.Vector{X: -2}, Wind: 5, Sideways: true, MaxDistance: 4},
			cp.Vector{X: -2},
			cp.Vector{X: -2.5},
		},
		{
			"no_reach",
			component.Fan{Direction: cp.Vector{X: 1}, Wind: 5},
			cp.Vector{},
			cp.Vector{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FanForce(tc.fan, tc.pos)
			if got.Sub(tc.want).Length() > 1e-9 {
				t.Fatalf("FanForce = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFanSystemOnlyPushesGliders(t *testing.T) {
	tests := []struct {
		name       string
		parachute  bool
		wantStillY bool
	}{
		{"falling_is_ignored", false, false},
		{"parachuting_is_held", true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, cp.Vector{})
			sensor(r, cp.BB{L: -2, B: -2, R: 2, T: 2}, component.FanComponent, &component.Fan{
				Origin: cp.Vector{Y: -2}, Direction: cp.Vector{X: 1}, Wind: 5, Upward: 5, MaxDistance: 4,
			})
			if tc.parachute {
				r.ctrl.ChangeState(character.StateParachuting)
			}

			r.run(1, NewPhysicsSystem(), NewFanSystem())

			if still := r.body.Velocity().Y == 0; still != tc.wantStillY {
				t.Fatalf("vertical velocity %v, want cancelled=%v", r.body.Velocity().Y, tc.wantStillY)
			}
		})
	}
}

func TestPitfallSystem(t *testing.T) {
	r := newRig(t, cp.Vector{})
	sensor(r, cp.BB{L: -1, B: -1, R: 1, T: 1}, component.PitfallComponent, &component.Pitfall{Respawn: cp.Vector{X: 10, Y: 5}})

	r.run(1, NewPhysicsSystem(), NewPitfallSystem())

	if pos := r.body.Position(); pos.X != 10 || pos.Y != 7 {
		t.Fatalf("respawned at %v, want (10, 7)", pos)
	}
	if v := r.body.Velocity(); v.Length() != 0 {
		t.Fatalf("respawn should stop the player, vel=%v", v)
	}
}

func TestBouncerSystem(t *testing.T) {
	r := newRig(t, cp.Vector{})
	sensor(r, cp.BB{L: -1, B: -1, R: 1, T: 1}, component.BouncerComponent, &component.Bouncer{Impulse: cp.Vector{Y: 10}})

	r.run(1, NewPhysicsSystem(), NewBouncerSystem())

	if !r.ctrl.Warped() {
		t.Fatalf("bounce should launch through the controller")
	}
	if vy := r.body.Velocity().Y; !near(vy, 10, 1e-9) {
		t.Fatalf("vy = %v, want 10", vy)
	}
}

func TestTTLSystem(t *testing.T) {
	r := newRig(t, cp.Vector{})
	e := ecs.CreateEntity(r.w)
	mustAdd(t, ecs.Add(r.w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2}))
	ttl := NewTTLSystem()

	r.w.SetPaused(true)
	r.run(5, ttl)
	if !ecs.IsAlive(r.w, e) {
		t.Fatalf("ttl must not run while paused")
	}

	r.w.SetPaused(false)
	r.run(1, ttl)
	if !ecs.IsAlive(r.w, e) {
		t.Fatalf("destroyed one frame early")
	}
	r.run(1, ttl)
	if ecs.IsAlive(r.w, e) {
		t.Fatalf("expected entity destroyed after its ttl")
	}
}

func TestProjectileLauncher(t *testing.T) {
	r := newRig(t, cp.Vector{X: 50})
	r.floor(cp.BB{L: -5, B: -1, R: 5, T: 0})
	launcher := NewProjectileLauncher(r.w)
	launcher.Launch(cp.Vector{Y: 1}, cp.Vector{X: 1})

	pie, ok := ecs.First(r.w, component.ProjectileComponent.Kind())
	if !ok {
		t.Fatalf("launch should spawn a projectile")
	}
	for _, has := range []bool{
		ecs.Has(r.w, pie, component.TransformComponent.Kind()),
		ecs.Has(r.w, pie, component.PhysicsBodyComponent.Kind()),
		ecs.Has(r.w, pie, component.TTLComponent.Kind()),
	} {
		if !has {
			t.Fatalf("projectile is missing a component")
		}
	}

	r.run(120, NewPhysicsSystem(), NewProjectileSystem(-100))
	if ecs.IsAlive(r.w, pie) {
		t.Fatalf("projectile should be destroyed when it hits the floor")
	}
	if _, ok := r.pw.Body(pie); ok {
		t.Fatalf("projectile body should leave the space")
	}
}

func TestProjectileKillPlane(t *testing.T) {
	r := newRig(t, cp.Vector{X: 50})
	NewProjectileLauncher(r.w).Launch(cp.Vector{}, cp.Vector{})
	pie, _ := ecs.First(r.w, component.ProjectileComponent.Kind())

	r.run(1, NewProjectileSystem(1))
	if ecs.IsAlive(r.w, pie) {
		t.Fatalf("projectile below the kill plane should be destroyed")
	}
}

type recordingAudio struct {
	played  []character.Cue
	stopped []character.Cue
}

func (a *recordingAudio) Play(c character.Cue) { a.played = append(a.played, c) }
func (a *recordingAudio) Stop(c character.Cue) { a.stopped = append(a.stopped, c) }

func TestAudioSystemDrainsQueues(t *testing.T) {
	r := newRig(t, cp.Vector{})
	out := &recordingAudio{}
	r.audio.Play(character.CueJump)
	r.audio.Play(character.CueGlide)
	r.audio.Stop(character.CueJump)

	r.run(1, NewAudioSystem(out))
	if len(out.played) != 2 || len(out.stopped) != 1 {
		t.Fatalf("played=%v stopped=%v", out.played, out.stopped)
	}
	if len(r.audio.Starts) != 0 || len(r.audio.Stops) != 0 {
		t.Fatalf("queues should be empty after the frame")
	}

	r.run(1, NewAudioSystem(out))
	if len(out.played) != 2 {
		t.Fatalf("cues replayed: %v", out.played)
	}
}

func TestCameraSystem(t *testing.T) {
	r := newRig(t, cp.Vector{})
	tr, _ := ecs.Get(r.w, r.player, component.TransformComponent.Kind())
	tr.X, tr.Y = 4, 2
	camEntity := ecs.CreateEntity(r.w)
	mustAdd(t, ecs.Add(r.w, camEntity, component.CameraComponent.Kind(), &component.Camera{Smoothness: 0.5, Zoom: 2}))
	cs := NewCameraSystem()

	r.run(1, cs)
	if x, y, zoom := cs.View(r.w); x != 4 || y != 2 || zoom != 2 {
		t.Fatalf("first update should snap, got (%v, %v) zoom %v", x, y, zoom)
	}

	tr.X = 6
	r.run(1, cs)
	if x, _, _ := cs.View(r.w); x != 5 {
		t.Fatalf("camera x = %v, want 5", x)
	}
}

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		p          cp.Vector
		camX, camY float64
		zoom       float64
		wantX      float64
		wantY      float64
	}{
		{cp.Vector{}, 0, 0, 1, 320, 180},
		{cp.Vector{X: 1, Y: 1}, 0, 0, 1, 352, 148},
		{cp.Vector{X: 5, Y: 5}, 5, 5, 3, 320, 180},
		{cp.Vector{X: 1}, 0, 0, 2, 384, 180},
	}
	for _, tc := range tests {
		x, y := WorldToScreen(tc.p, tc.camX, tc.camY, tc.zoom)
		if x != tc.wantX || y != tc.wantY {
			t.Fatalf("WorldToScreen(%v) = (%v, %v), want (%v, %v)", tc.p, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestWhiteFlashSystem(t *testing.T) {
	r := newRig(t, cp.Vector{})
	wf := &component.WhiteFlash{Interval: 2}
	mustAdd(t, ecs.Add(r.w, r.player, component.WhiteFlashComponent.Kind(), wf))
	flash := NewWhiteFlashSystem()

	r.run(3, flash)
	if wf.On {
		t.Fatalf("should not blink while vulnerable")
	}

	r.ctrl.OnDamaged(1, character.DamageSource{Name: "test"})
	if !r.ctrl.Invincible() {
		t.Fatalf("hit should grant invincibility")
	}
	var seen []bool
	for i := 0; i < 4; i++ {
		r.run(1, flash)
		seen = append(seen, wf.On)
	}
	want := []bool{false, true, true, false}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("blink pattern %v, want %v", seen, want)
		}
	}
}
