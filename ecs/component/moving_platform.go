package component

import "github.com/jakecoffman/cp"

// MovingPlatform drives a kinematic body through Waypoints at Speed units per
// second, looping back to the first one.
type MovingPlatform struct {
	Waypoints []cp.Vector
	Speed     float64
	Target    int
	// Delta is how far the platform moved during the last update.
	Delta cp.Vector
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()
