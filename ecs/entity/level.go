package entity

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"github.com/milk9111/umbrella/prefabs"
	"golang.org/x/image/colornames"
)

var ErrNoPhysicsWorld = errors.New("entity: world has no physics world")

// Draw order for level props. The player sits above all of them.
const (
	layerVolumes   = 0
	layerGround    = 1
	layerPickups   = 3
	layerObstacles = 4
)

var fanTint = color.RGBA{R: 160, G: 220, B: 240, A: 90}

// Level is what BuildLevel made.
type Level struct {
	Name       string
	Spawn      cp.Vector
	KillPlaneY *float64
	Entities   []ecs.Entity
}

// BuildLevel creates the geometry and props described by spec.
func BuildLevel(w *ecs.World, spec prefabs.LevelSpec) (*Level, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, ErrNoPhysicsWorld
	}
	lvl := &Level{Name: spec.Name, Spawn: spec.Spawn.CP(), KillPlaneY: spec.KillPlaneY}

	for i, box := range spec.Solids {
		e := ecs.CreateEntity(w)
		shape := pw.AddSolid(e, box.BB())
		if err := staticProp(w, e, box, shape.Body(), component.BodySolid, colornames.Dimgray, layerGround); err != nil {
			return nil, fmt.Errorf("level %s: solid %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	for i, p := range spec.Platforms {
		e, err := buildPlatform(w, pw, p)
		if err != nil {
			return nil, fmt.Errorf("level %s: platform %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	for i, p := range spec.Pickups {
		tint := colornames.Gold
		if p.Kind == string(component.PickupUmbrella) {
			tint = colornames.Deepskyblue
		}
		e, err := buildSensor(w, pw, p.Box, tint, layerPickups, func(e ecs.Entity) error {
			return attach(w, e, component.PickupComponent, &component.Pickup{Kind: component.PickupKind(p.Kind), Value: p.Value}, "pickup")
		})
		if err != nil {
			return nil, fmt.Errorf("level %s: pickup %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	for i, h := range spec.Hazards {
		e, err := buildSensor(w, pw, h.Box, colornames.Crimson, layerObstacles, func(e ecs.Entity) error {
			return attach(w, e, component.HazardComponent, &component.Hazard{Damage: h.Damage, DropPercentage: h.DropPercentage}, "hazard")
		})
		if err != nil {
			return nil, fmt.Errorf("level %s: hazard %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	for i, f := range spec.Fans {
		fan := fanFrom(f)
		e, err := buildSensor(w, pw, f.Box, fanTint, layerVolumes, func(e ecs.Entity) error {
			return attach(w, e, component.FanComponent, &fan, "fan")
		})
		if err != nil {
			return nil, fmt.Errorf("level %s: fan %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	for i, p := range spec.Pitfalls {
		e := ecs.CreateEntity(w)
		pw.AddSensor(e, p.BB())
		err := firstErr(
			func() error {
				return attach(w, e, component.TransformComponent, &component.Transform{X: p.X, Y: p.Y}, "transform")
			},
			func() error {
				return attach(w, e, component.PitfallComponent, &component.Pitfall{Respawn: p.Respawn.CP()}, "pitfall")
			},
		)
		if err != nil {
			return nil, fmt.Errorf("level %s: pitfall %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	for i, b := range spec.Bouncers {
		e, err := buildSensor(w, pw, b.Box, colornames.Mediumpurple, layerObstacles, func(e ecs.Entity) error {
			return attach(w, e, component.BouncerComponent, &component.Bouncer{Impulse: b.Impulse.CP()}, "bouncer")
		})
		if err != nil {
			return nil, fmt.Errorf("level %s: bouncer %d: %w", spec.Name, i, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}

	return lvl, nil
}

func staticProp(w *ecs.World, e ecs.Entity, box prefabs.Box, body *cp.Body, kind component.BodyKind, tint color.RGBA, layer int) error {
	return firstErr(
		func() error {
			return attach(w, e, component.TransformComponent, &component.Transform{X: box.X, Y: box.Y}, "transform")
		},
		func() error {
			return attach(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Kind: kind, Width: box.Width, Height: box.Height}, "physics body")
		},
		func() error {
			return attach(w, e, component.RenderableComponent, &component.Renderable{Color: tint}, "renderable")
		},
		func() error {
			return attach(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: layer}, "render layer")
		},
	)
}

func buildSensor(w *ecs.World, pw *ecs.PhysicsWorld, box prefabs.Box, tint color.RGBA, layer int, extra func(ecs.Entity) error) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	shape := pw.AddSensor(e, box.BB())
	if err := staticProp(w, e, box, shape.Body(), component.BodySensor, tint, layer); err != nil {
		return 0, err
	}
	if err := extra(e); err != nil {
		return 0, err
	}
	return e, nil
}

func buildPlatform(w *ecs.World, pw *ecs.PhysicsWorld, p prefabs.PlatformSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	body := pw.AddPlatform(e, p.Center(), p.Width, p.Height)

	waypoints := make([]cp.Vector, 0, len(p.Waypoints))
	for _, wp := range p.Waypoints {
		waypoints = append(waypoints, wp.CP())
	}
	if len(waypoints) == 0 {
		waypoints = append(waypoints, p.Center())
	}

	err := firstErr(
		func() error {
			return attach(w, e, component.TransformComponent, &component.Transform{X: p.X, Y: p.Y}, "transform")
		},
		func() error {
			return attach(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Kind: component.BodyPlatform, Width: p.Width, Height: p.Height}, "physics body")
		},
		func() error {
			return attach(w, e, component.MovingPlatformComponent, &component.MovingPlatform{Waypoints: waypoints, Speed: p.Speed}, "moving platform")
		},
		func() error {
			return attach(w, e, component.RenderableComponent, &component.Renderable{Color: colornames.Slategray}, "renderable")
		},
		func() error {
			return attach(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: layerGround}, "render layer")
		},
	)
	if err != nil {
		return 0, err
	}
	return e, nil
}

// fanFrom places the fan's origin on the box edge it blows away from, so
// the push fades out over the box's length along Direction.
func fanFrom(f prefabs.FanSpec) component.Fan {
	dir := f.Direction.CP()
	if dir.Length() == 0 {
		dir = cp.Vector{Y: 1}
	}
	dir = dir.Normalize()

	reach := f.Width
	if math.Abs(dir.Y) > math.Abs(dir.X) {
		reach = f.Height
	}
	return component.Fan{
		Origin:      f.Center().Sub(dir.Mult(reach / 2)),
		Direction:   dir,
		Wind:        f.Wind,
		Upward:      f.Upward,
		Sideways:    f.Sideways,
		MaxDistance: reach,
	}
}
