package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
	collisionTypeSensor
	collisionTypePlatform
	collisionTypeProjectile
)

const (
	categoryGround uint = 1 << iota
	categoryCharacter
	categorySensor
	categoryProjectile

	allCategories = ^uint(0)
)

var (
	groundFilter     = cp.ShapeFilter{Categories: categoryGround, Mask: allCategories}
	characterFilter  = cp.ShapeFilter{Categories: categoryCharacter, Mask: allCategories &^ categoryProjectile}
	sensorFilter     = cp.ShapeFilter{Categories: categorySensor, Mask: categoryCharacter}
	projectileFilter = cp.ShapeFilter{Categories: categoryProjectile, Mask: categoryGround}
	groundQuery      = cp.ShapeFilter{Categories: allCategories, Mask: categoryGround}
)

// PhysicsWorld owns the Chipmunk space and maps shapes back to entities.
type PhysicsWorld struct {
	space *cp.Space

	bodies     map[Entity]*bodyInfo
	shapes     map[*cp.Shape]Entity
	characters map[*cp.Shape]struct{}

	contacts []ContactEvent
	impacts  []Entity
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

// NewPhysicsWorld creates a space with the given vertical gravity. Positive
// Y points up, so gravity is normally negative.
func NewPhysicsWorld(gravity float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	pw := &PhysicsWorld{
		space:      space,
		bodies:     make(map[Entity]*bodyInfo),
		shapes:     make(map[*cp.Shape]Entity),
		characters: make(map[*cp.Shape]struct{}),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *PhysicsWorld) Gravity() cp.Vector {
	return pw.space.Gravity()
}

// AddSolid adds static ground geometry covering bb.
func (pw *PhysicsWorld) AddSolid(e Entity, bb cp.BB) *cp.Shape {
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(groundFilter)
	pw.space.AddShape(shape)
	pw.track(e, pw.space.StaticBody, shape, true)
	return shape
}

// AddSensor adds a static trigger volume that only reports character
// contacts.
func (pw *PhysicsWorld) AddSensor(e Entity, bb cp.BB) *cp.Shape {
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeSensor)
	shape.SetFilter(sensorFilter)
	pw.space.AddShape(shape)
	pw.track(e, pw.space.StaticBody, shape, true)
	return shape
}

// AddPlatform adds a kinematic box that counts as ground.
func (pw *PhysicsWorld) AddPlatform(e Entity, center cp.Vector, width, height float64) *cp.Body {
	body := pw.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(center)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypePlatform)
	shape.SetFilter(groundFilter)
	pw.space.AddShape(shape)
	pw.track(e, body, shape, false)
	return body
}

// AddCharacter adds a dynamic box that never rotates.
func (pw *PhysicsWorld) AddCharacter(e Entity, center cp.Vector, width, height, mass float64) *cp.Body {
	if mass <= 0 {
		mass = 1
	}
	body := pw.space.AddBody(cp.NewBody(mass, math.Inf(1)))
	body.SetPosition(center)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(characterFilter)
	pw.space.AddShape(shape)
	pw.track(e, body, shape, false)
	pw.characters[shape] = struct{}{}
	return body
}

// AddProjectile adds a small dynamic circle that only collides with ground.
func (pw *PhysicsWorld) AddProjectile(e Entity, center cp.Vector, radius float64, velocity cp.Vector) *cp.Body {
	mass := 0.1
	body := pw.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(center)
	body.SetVelocityVector(velocity)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0.6)
	shape.SetElasticity(0.3)
	shape.SetCollisionType(collisionTypeProjectile)
	shape.SetFilter(projectileFilter)
	pw.space.AddShape(shape)
	pw.track(e, body, shape, false)
	return body
}

// Shift translates a dynamic body by delta without touching its velocity.
func (pw *PhysicsWorld) Shift(body *cp.Body, delta cp.Vector) {
	pw.MoveKinematic(body, body.Position().Add(delta))
}

// Body returns the body registered for e.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	info, ok := pw.bodies[e]
	if !ok {
		return nil, false
	}
	return info.body, true
}

// MoveKinematic teleports a body and refreshes its collision
// bounds so queries made before the next step see the new position.
func (pw *PhysicsWorld) MoveKinematic(body *cp.Body, pos cp.Vector) {
	body.SetPosition(pos)
	pw.space.ReindexShapesForBody(body)
}

// GroundAt reports whether any ground shape lies within radius of point.
func (pw *PhysicsWorld) GroundAt(point cp.Vector, radius float64) bool {
	if pw == nil {
		return false
	}
	info := pw.space.PointQueryNearest(point, radius, groundQuery)
	return info != nil && info.Shape != nil
}

// Remove drops every shape and body registered for e.
func (pw *PhysicsWorld) Remove(e Entity) {
	info, ok := pw.bodies[e]
	if !ok {
		return
	}
	for _, shape := range info.shapes {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, shape)
		delete(pw.characters, shape)
	}
	if !info.static && info.body != nil {
		pw.space.RemoveBody(info.body)
	}
	delete(pw.bodies, e)
}

// Prune removes the bodies of entities for which alive returns false.
func (pw *PhysicsWorld) Prune(alive func(Entity) bool) {
	for e := range pw.bodies {
		if !alive(e) {
			pw.Remove(e)
		}
	}
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	pw.space.Step(dt)
}

// DrainContacts returns the contacts recorded since the last call.
func (pw *PhysicsWorld) DrainContacts() []ContactEvent {
	out := pw.contacts
	pw.contacts = nil
	return out
}

// DrainImpacts returns the projectiles that hit ground since the last call.
func (pw *PhysicsWorld) DrainImpacts() []Entity {
	out := pw.impacts
	pw.impacts = nil
	return out
}

func (pw *PhysicsWorld) track(e Entity, body *cp.Body, shape *cp.Shape, static bool) {
	info := pw.bodies[e]
	if info == nil {
		info = &bodyInfo{body: body, static: static}
		pw.bodies[e] = info
	}
	info.shapes = append(info.shapes, shape)
	pw.shapes[shape] = e
}

func (pw *PhysicsWorld) setupHandlers() {
	for _, other := range []cp.CollisionType{collisionTypeSensor, collisionTypePlatform} {
		handler := pw.space.NewCollisionHandler(collisionTypeCharacter, other)
		handler.UserData = pw
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			if pw, ok := userData.(*PhysicsWorld); ok {
				pw.recordContact(arb, true)
			}
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			if pw, ok := userData.(*PhysicsWorld); ok {
				pw.recordContact(arb, false)
			}
		}
	}

	for _, ground := range []cp.CollisionType{collisionTypeSolid, collisionTypePlatform} {
		handler := pw.space.NewCollisionHandler(collisionTypeProjectile, ground)
		handler.UserData = pw
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			pw, ok := userData.(*PhysicsWorld)
			if !ok {
				return true
			}
			a, _ := arb.Shapes()
			if e, ok := pw.shapes[a]; ok {
				pw.impacts = append(pw.impacts, e)
			}
			return true
		}
	}
}

func (pw *PhysicsWorld) recordContact(arb *cp.Arbiter, begin bool) {
	a, b := arb.Shapes()
	charShape, otherShape := a, b
	if _, ok := pw.characters[charShape]; !ok {
		charShape, otherShape = b, a
	}
	if _, ok := pw.characters[charShape]; !ok {
		return
	}
	character, okC := pw.shapes[charShape]
	other, okO := pw.shapes[otherShape]
	if !okC || !okO {
		return
	}

	evt := ContactEvent{Character: character, Other: other, Begin: begin}
	if begin {
		n := arb.Normal()
		if charShape != a {
			n = n.Neg()
		}
		// Normal points from the character into the other shape.
		evt.FromAbove = n.Y < -0.5
	}
	pw.contacts = append(pw.contacts, evt)
}
