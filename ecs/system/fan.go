package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// FanSystem blows on parachuting characters inside a fan volume. Characters
// in any other state are left alone.
type FanSystem struct {
	inside overlaps
}

func NewFanSystem() *FanSystem { return &FanSystem{inside: overlaps{}} }

func (s *FanSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, c := range w.Events().Contacts() {
		if ecs.Has(w, c.Other, component.FanComponent.Kind()) {
			s.inside.apply(c)
		}
	}
	s.inside.prune(w)
	if w.Paused() {
		return
	}

	for fanEntity, characters := range s.inside {
		fan, ok := ecs.Get(w, fanEntity, component.FanComponent.Kind())
		if !ok {
			continue
		}
		for e := range characters {
			ctrl, ok := controllerOf(w, e)
			if !ok || ctrl.State() != character.StateParachuting {
				continue
			}
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok || body.Body == nil {
				continue
			}

			pos := body.Body.Position()
			body.Body.ApplyForceAtWorldPoint(FanForce(*fan, pos), pos)
			vel := body.Body.Velocity()
			body.Body.SetVelocity(vel.X, 0)
		}
	}
}

// FanForce is the push fan gives a character at pos.
func FanForce(fan component.Fan, pos cp.Vector) cp.Vector {
	if fan.MaxDistance <= 0 {
		return cp.Vector{}
	}
	dist := pos.Sub(fan.Origin).Length()
	if dist > fan.MaxDistance {
		dist = fan.MaxDistance
	}
	strength := 1 - dist/fan.MaxDistance

	dir := fan.Direction
	if dir.Length() > 0 {
		dir = dir.Normalize()
	}
	if fan.Sideways {
		return dir.Mult(fan.Wind * common.SmoothStep(0, 1, strength))
	}
	return dir.Mult(fan.Wind * strength).Add(cp.Vector{Y: fan.Upward * strength})
}
