package system

import (
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// PhysicsSystem steps the world's Chipmunk space, publishes the contacts
// it produced and copies body positions back into transforms.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	// Bodies of entities destroyed since the last step leave the space first.
	pw.Prune(func(e ecs.Entity) bool { return ecs.IsAlive(w, e) })

	if w.Paused() {
		return
	}

	pw.Step(w.TimeStep())
	for _, c := range pw.DrainContacts() {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: c})
	}
	for _, e := range pw.DrainImpacts() {
		w.Events().Push(ecs.Event{Type: ecs.EventImpact, Data: e})
	}

	syncTransforms(w)
}

func syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, t *component.Transform, b *component.PhysicsBody) {
		// Static shapes share the space's static body; their transform is
		// authoritative.
		if b.Body == nil || b.Kind == component.BodySolid || b.Kind == component.BodySensor {
			return
		}
		pos := b.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}
