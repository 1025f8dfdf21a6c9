package component

// Camera follows the player. X and Y are the world point at the screen
// center.
type Camera struct {
	X          float64
	Y          float64
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
