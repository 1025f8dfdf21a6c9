package ecs

import "github.com/jakecoffman/cp"

// CharacterBody exposes a Chipmunk body through the character.Body
// interface.
type CharacterBody struct {
	body  *cp.Body
	space *cp.Space
}

func NewCharacterBody(pw *PhysicsWorld, body *cp.Body) *CharacterBody {
	return &CharacterBody{body: body, space: pw.Space()}
}

func (b *CharacterBody) Velocity() cp.Vector     { return b.body.Velocity() }
func (b *CharacterBody) SetVelocity(v cp.Vector) { b.body.SetVelocityVector(v) }
func (b *CharacterBody) Position() cp.Vector     { return b.body.Position() }
func (b *CharacterBody) Gravity() cp.Vector      { return b.space.Gravity() }

func (b *CharacterBody) ApplyImpulse(j cp.Vector) {
	b.body.ApplyImpulseAtWorldPoint(j, b.body.Position())
}

// Teleport moves the body and clears its velocity.
func (b *CharacterBody) Teleport(pos cp.Vector) {
	b.body.SetPosition(pos)
	b.body.SetVelocityVector(cp.Vector{})
}
