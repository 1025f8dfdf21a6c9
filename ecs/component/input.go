package component

import "github.com/milk9111/umbrella/character"

// Input holds the raw buttons written by whatever drives the entity and the
// sampler that turns them into edge-aware snapshots.
type Input struct {
	Buttons character.Buttons
	Sampler character.Sampler
}

var InputComponent = NewComponent[Input]()
