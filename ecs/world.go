package ecs

import "github.com/milk9111/umbrella/ecs/component"

// World owns entities, their components, the per-frame event queue and the
// attached physics world.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	physicsWorld *PhysicsWorld

	paused bool
	dt     float64
}

// NewWorld creates an empty world stepping at dt seconds per update.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		dt:     DefaultTimeStep,
	}
}

// DefaultTimeStep is the fixed update rate.
const DefaultTimeStep = 1.0 / 60.0

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and kills the handle. It
// reports whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities lists the live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// SetPaused freezes or resumes simulation systems.
func (w *World) SetPaused(paused bool) {
	w.paused = paused
}

func (w *World) Paused() bool {
	return w != nil && w.paused
}

// SetTimeStep changes the seconds simulated per update.
func (w *World) SetTimeStep(dt float64) {
	if dt > 0 {
		w.dt = dt
	}
}

func (w *World) TimeStep() float64 {
	return w.dt
}

func (w *World) store(id component.ComponentID) *SparseSet {
	return w.stores[id]
}

func (w *World) ensureStore(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}
