package system

import (
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// HazardSystem damages every character overlapping a hazard, every frame.
// The controller's invincibility window throttles repeated hits.
type HazardSystem struct {
	inside overlaps
}

func NewHazardSystem() *HazardSystem { return &HazardSystem{inside: overlaps{}} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, c := range w.Events().Contacts() {
		if ecs.Has(w, c.Other, component.HazardComponent.Kind()) {
			s.inside.apply(c)
		}
	}
	s.inside.prune(w)
	if w.Paused() {
		return
	}

	for hazardEntity, characters := range s.inside {
		hazard, ok := ecs.Get(w, hazardEntity, component.HazardComponent.Kind())
		if !ok {
			continue
		}
		src := character.DamageSource{Name: "hazard", DropPercentage: hazard.DropPercentage}
		for e := range characters {
			if ctrl, ok := controllerOf(w, e); ok {
				ctrl.OnDamaged(hazard.Damage, src)
			}
		}
	}
}
