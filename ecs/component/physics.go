package component

import "github.com/jakecoffman/cp"

// BodyKind says how the physics world registered a body.
type BodyKind int

const (
	BodySolid BodyKind = iota
	BodySensor
	BodyPlatform
	BodyCharacter
	BodyProjectile
)

// PhysicsBody links an entity to its Chipmunk body. Width and Height are the
// box extents; Radius is set for circles instead.
type PhysicsBody struct {
	Body   *cp.Body
	Kind   BodyKind
	Width  float64
	Height float64
	Radius float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
