package system

import (
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
	snapped   bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera towards the player. The first update snaps.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !ecs.Has(w, cs.camEntity, component.CameraComponent.Kind()) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.snapped = false
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := cam.Smoothness
	if !cs.snapped || t <= 0 || t > 1 {
		t = 1
		cs.snapped = true
	}
	cam.X = common.Lerp(cam.X, target.X, t)
	cam.Y = common.Lerp(cam.Y, target.Y, t)
}

// View returns the camera center and zoom, defaulting to the origin at 1x.
func (cs *CameraSystem) View(w *ecs.World) (x, y, zoom float64) {
	zoom = 1
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return cam.X, cam.Y, zoom
}
