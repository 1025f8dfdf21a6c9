package system

import (
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// AudioSystem forwards queued cue requests to the output device. Stops are
// applied after starts so a cue stopped in the same frame stays silent.
type AudioSystem struct {
	out character.Audio
}

func NewAudioSystem(out character.Audio) *AudioSystem {
	return &AudioSystem{out: out}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audio *component.Audio) {
		if a.out != nil {
			for _, cue := range audio.Starts {
				a.out.Play(cue)
			}
			for _, cue := range audio.Stops {
				a.out.Stop(cue)
			}
		}
		audio.Starts = audio.Starts[:0]
		audio.Stops = audio.Stops[:0]
	})
}
