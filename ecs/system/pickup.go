package system

import (
	"log"

	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// PickupSystem hands pickups to the first character that touches them and
// removes the pickup from the level.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem { return &PickupSystem{} }

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil || w.Paused() {
		return
	}

	for _, c := range w.Events().Contacts() {
		if !c.Begin || !ecs.IsAlive(w, c.Other) {
			continue
		}
		pickup, ok := ecs.Get(w, c.Other, component.PickupComponent.Kind())
		if !ok {
			continue
		}

		switch pickup.Kind {
		case component.PickupUmbrella:
			ctrl, ok := controllerOf(w, c.Character)
			if !ok {
				continue
			}
			ctrl.GrantGlideItem()
		case component.PickupCoin:
			wallet, ok := ecs.Get(w, c.Character, component.WalletComponent.Kind())
			if !ok {
				continue
			}
			wallet.Add(pickup.Value)
		default:
			log.Printf("pickup: unknown kind %q", pickup.Kind)
			continue
		}

		if audio, ok := ecs.Get(w, c.Character, component.AudioComponent.Kind()); ok {
			audio.Play(character.CuePickup)
		}
		ecs.DestroyEntity(w, c.Other)
	}
}
