package component

// Transform is an entity's world position. Positive Y points up; the
// renderer flips it.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
