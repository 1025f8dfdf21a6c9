package system

import (
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
)

type GameplayOptions struct {
	// Input drives every Input component. Nil reads keyboard and gamepads.
	Input ButtonSource
	// Audio receives cue requests. Nil drops them.
	Audio character.Audio
	// KillY is where stray projectiles are removed.
	KillY float64
}

// Gameplay returns the simulation systems in frame order: input is sampled
// and controllers tick before physics steps, and platforms move their
// passengers once contacts for the frame are known.
func Gameplay(opts GameplayOptions) []ecs.System {
	return []ecs.System{
		NewInputSystem(opts.Input),
		NewPlayerControllerSystem(),
		NewPhysicsSystem(),
		NewPlatformSystem(),
		NewPickupSystem(),
		NewHazardSystem(),
		NewFanSystem(),
		NewPitfallSystem(),
		NewBouncerSystem(),
		NewProjectileSystem(opts.KillY),
		NewTTLSystem(),
		NewWhiteFlashSystem(),
		NewAudioSystem(opts.Audio),
		NewCameraSystem(),
	}
}
