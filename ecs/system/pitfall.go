package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// respawnLift raises the respawn point so characters drop in from above.
const respawnLift = 2.0

// PitfallSystem returns characters that touch a pitfall to its respawn
// point.
type PitfallSystem struct{}

func NewPitfallSystem() *PitfallSystem { return &PitfallSystem{} }

func (s *PitfallSystem) Update(w *ecs.World) {
	if w == nil || w.Paused() {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for _, c := range w.Events().Contacts() {
		if !c.Begin {
			continue
		}
		pit, ok := ecs.Get(w, c.Other, component.PitfallComponent.Kind())
		if !ok {
			continue
		}
		body, ok := ecs.Get(w, c.Character, component.PhysicsBodyComponent.Kind())
		if !ok || body.Body == nil {
			continue
		}
		pw.MoveKinematic(body.Body, pit.Respawn.Add(cp.Vector{Y: respawnLift}))
		body.Body.SetVelocityVector(cp.Vector{})
	}
}
