package system

import (
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// BouncerSystem launches characters that land on a bouncer. The launch goes
// through the controller so air control keeps the momentum.
type BouncerSystem struct{}

func NewBouncerSystem() *BouncerSystem { return &BouncerSystem{} }

func (s *BouncerSystem) Update(w *ecs.World) {
	if w == nil || w.Paused() {
		return
	}

	for _, c := range w.Events().Contacts() {
		if !c.Begin {
			continue
		}
		bouncer, ok := ecs.Get(w, c.Other, component.BouncerComponent.Kind())
		if !ok {
			continue
		}
		ctrl, ok := controllerOf(w, c.Character)
		if !ok {
			continue
		}
		if body, ok := ecs.Get(w, c.Character, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			vel := body.Body.Velocity()
			if vel.Y < 0 {
				body.Body.SetVelocity(vel.X, 0)
			}
		}
		ctrl.Launch(bouncer.Impulse)
	}
}
