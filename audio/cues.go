package audio

import (
	"time"

	"github.com/milk9111/umbrella/character"
)

var cueTones = map[character.Cue]tone{
	character.CueJump: {
		StartHz: 320, EndHz: 640, Duration: 140 * time.Millisecond,
		Attack: 5 * time.Millisecond, Decay: 3, Volume: 0.25,
	},
	character.CueGlide: {
		StartHz: 180, EndHz: 220, Duration: 600 * time.Millisecond,
		Attack: 40 * time.Millisecond, Volume: 0.12, Noise: 0.6, Loop: true,
	},
	character.CueHurt: {
		StartHz: 220, EndHz: 90, Duration: 250 * time.Millisecond,
		Attack: 2 * time.Millisecond, Decay: 4, Volume: 0.3, Noise: 0.3,
	},
	character.CueAttack: {
		StartHz: 900, EndHz: 500, Duration: 90 * time.Millisecond,
		Attack: 2 * time.Millisecond, Decay: 6, Volume: 0.2, Noise: 0.4,
	},
	character.CuePickup: {
		StartHz: 880, EndHz: 1320, Duration: 160 * time.Millisecond,
		Attack: 3 * time.Millisecond, Decay: 2, Volume: 0.2,
	},
}
