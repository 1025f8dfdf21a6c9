package component

import "github.com/milk9111/umbrella/character"

// Audio queues cue requests raised during a frame. The audio system hands
// them to the output device and clears the queues.
type Audio struct {
	Starts []character.Cue
	Stops  []character.Cue
}

func (a *Audio) Play(cue character.Cue) { a.Starts = append(a.Starts, cue) }
func (a *Audio) Stop(cue character.Cue) { a.Stops = append(a.Stops, cue) }

var AudioComponent = NewComponent[Audio]()
