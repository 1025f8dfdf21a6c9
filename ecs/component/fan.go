package component

import "github.com/jakecoffman/cp"

// Fan pushes gliding characters inside its volume along Direction. The push
// weakens linearly with distance from Origin and vanishes at MaxDistance.
// Vertical fans add Upward on top of the wind; sideways fans ease the wind
// with a smoothstep instead.
type Fan struct {
	Origin      cp.Vector
	Direction   cp.Vector
	Wind        float64
	Upward      float64
	Sideways    bool
	MaxDistance float64
}

var FanComponent = NewComponent[Fan]()
