package entity

import (
	"fmt"

	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/prefabs"
)

// Scene is a freshly built world with its level, player and camera.
type Scene struct {
	World      *ecs.World
	Level      *Level
	Player     ecs.Entity
	Controller *character.Controller
	Camera     ecs.Entity
}

type SceneOptions struct {
	Player prefabs.PlayerSpec
	Camera prefabs.CameraSpec
	PlayerOptions
}

// BuildScene creates a new world for level. The level's kill plane, when
// it has one, replaces the prefab's.
func BuildScene(level prefabs.LevelSpec, opts SceneOptions) (*Scene, error) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(common.Gravity))

	lvl, err := BuildLevel(w, level)
	if err != nil {
		return nil, err
	}

	playerOpts := opts.PlayerOptions
	if lvl.KillPlaneY != nil {
		playerOpts.KillPlaneY = lvl.KillPlaneY
	}
	player, ctrl, err := NewPlayer(w, opts.Player, lvl.Spawn, playerOpts)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", level.Name, err)
	}

	camera, err := NewCamera(w, opts.Camera, lvl.Spawn)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", level.Name, err)
	}

	return &Scene{World: w, Level: lvl, Player: player, Controller: ctrl, Camera: camera}, nil
}
