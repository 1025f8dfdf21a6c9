package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// passengerSlop is how far a character's feet may sink into a platform top
// and still count as standing on it. Chipmunk lets shapes overlap by its
// collision slop before pushing them apart.
const passengerSlop = 0.1

// PlatformSystem moves kinematic platforms along their waypoints and carries
// the characters standing on them. It runs after physics so the carry is a
// separate write from the controller's.
type PlatformSystem struct {
	passengers map[ecs.Entity]map[ecs.Entity]struct{}
}

func NewPlatformSystem() *PlatformSystem {
	return &PlatformSystem{passengers: make(map[ecs.Entity]map[ecs.Entity]struct{})}
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil || w.Paused() {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for _, c := range w.Events().Contacts() {
		if !ecs.Has(w, c.Other, component.MovingPlatformComponent.Kind()) {
			continue
		}
		if !c.Begin {
			s.dropPassenger(c.Other, c.Character)
			continue
		}
		if c.FromAbove || standsOn(w, c.Character, c.Other) {
			s.addPassenger(c.Other, c.Character)
		}
	}

	dt := w.TimeStep()
	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, mp *component.MovingPlatform, b *component.PhysicsBody) {
		mp.Delta = cp.Vector{}
		if b.Body == nil || len(mp.Waypoints) == 0 {
			return
		}
		if mp.Target < 0 || mp.Target >= len(mp.Waypoints) {
			mp.Target = 0
		}

		from := b.Body.Position()
		target := mp.Waypoints[mp.Target]
		to := common.MoveTowards(from, target, mp.Speed*dt)
		pw.MoveKinematic(b.Body, to)
		mp.Delta = to.Sub(from)
		if to == target {
			mp.Target = (mp.Target + 1) % len(mp.Waypoints)
		}

		for passenger := range s.passengers[e] {
			body, ok := ecs.Get(w, passenger, component.PhysicsBodyComponent.Kind())
			if !ok || body.Body == nil {
				s.dropPassenger(e, passenger)
				continue
			}
			pw.Shift(body.Body, mp.Delta)
		}
	})

	for platform := range s.passengers {
		if !ecs.IsAlive(w, platform) {
			delete(s.passengers, platform)
		}
	}
	syncTransforms(w)
}

// Passengers lists the characters riding platform.
func (s *PlatformSystem) Passengers(platform ecs.Entity) []ecs.Entity {
	out := make([]ecs.Entity, 0, len(s.passengers[platform]))
	for e := range s.passengers[platform] {
		out = append(out, e)
	}
	return out
}

func (s *PlatformSystem) addPassenger(platform, character ecs.Entity) {
	set, ok := s.passengers[platform]
	if !ok {
		set = make(map[ecs.Entity]struct{})
		s.passengers[platform] = set
	}
	set[character] = struct{}{}
}

func (s *PlatformSystem) dropPassenger(platform, character ecs.Entity) {
	delete(s.passengers[platform], character)
}

// standsOn reports whether character's bottom edge is at or above the top
// edge of platform.
func standsOn(w *ecs.World, character, platform ecs.Entity) bool {
	cb, ok := ecs.Get(w, character, component.PhysicsBodyComponent.Kind())
	if !ok || cb.Body == nil {
		return false
	}
	pb, ok := ecs.Get(w, platform, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return false
	}
	bottom := cb.Body.Position().Y - cb.Height/2
	top := pb.Body.Position().Y + pb.Height/2
	return bottom >= top-passengerSlop
}
