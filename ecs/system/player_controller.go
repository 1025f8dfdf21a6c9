package system

import (
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// PlayerControllerSystem samples each player's input once and ticks its
// controller. It runs while paused too so the out-of-bounds check keeps
// working.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(_ ecs.Entity, input *component.Input, player *component.Player) {
		if player.Controller == nil {
			return
		}
		player.Controller.Tick(character.Tick{
			DT:     w.TimeStep(),
			Paused: w.Paused(),
			Input:  input.Sampler.Sample(input.Buttons),
		})
	})
}

func controllerOf(w *ecs.World, e ecs.Entity) (*character.Controller, bool) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || player.Controller == nil {
		return nil, false
	}
	return player.Controller, true
}
