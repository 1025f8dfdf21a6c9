package component

import "github.com/jakecoffman/cp"

// Pitfall sends characters that touch it back to Respawn.
type Pitfall struct {
	Respawn cp.Vector
}

var PitfallComponent = NewComponent[Pitfall]()
