package component

import "github.com/jakecoffman/cp"

// Bouncer launches characters that land on it.
type Bouncer struct {
	Impulse cp.Vector
}

var BouncerComponent = NewComponent[Bouncer]()
