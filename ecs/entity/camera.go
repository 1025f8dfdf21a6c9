package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"github.com/milk9111/umbrella/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec, at cp.Vector) (ecs.Entity, error) {
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := spec.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 0.15
	}

	camera := ecs.CreateEntity(w)
	err := firstErr(
		func() error {
			return attach(w, camera, component.CameraTagComponent, &component.CameraTag{}, "camera tag")
		},
		func() error {
			return attach(w, camera, component.CameraComponent, &component.Camera{X: at.X, Y: at.Y, Zoom: zoom, Smoothness: smooth}, "camera")
		},
	)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}
