package system

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

const (
	projectileRadius   = 0.15
	projectileLifetime = 180
	// projectileSpawnLift starts the projectile slightly above the thrower's
	// center.
	projectileSpawnLift = 0.1
)

// ProjectileLauncher spawns projectile entities for the controller's
// Attacking sub-state.
type ProjectileLauncher struct {
	w *ecs.World
}

func NewProjectileLauncher(w *ecs.World) *ProjectileLauncher {
	return &ProjectileLauncher{w: w}
}

func (l *ProjectileLauncher) Launch(origin, velocity cp.Vector) {
	if l == nil || l.w == nil {
		return
	}
	pw := l.w.PhysicsWorld()
	if pw == nil {
		return
	}

	e := ecs.CreateEntity(l.w)
	origin = origin.Add(cp.Vector{Y: projectileSpawnLift})
	body := pw.AddProjectile(e, origin, projectileRadius, velocity)
	add := func(err error) {
		if err != nil {
			panic("projectile launcher: add component: " + err.Error())
		}
	}
	add(ecs.Add(l.w, e, component.TransformComponent.Kind(), &component.Transform{X: origin.X, Y: origin.Y}))
	add(ecs.Add(l.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Kind: component.BodyProjectile, Radius: projectileRadius}))
	add(ecs.Add(l.w, e, component.ProjectileComponent.Kind(), &component.Projectile{}))
	add(ecs.Add(l.w, e, component.TTLComponent.Kind(), &component.TTL{Frames: projectileLifetime}))
	add(ecs.Add(l.w, e, component.RenderableComponent.Kind(), &component.Renderable{Color: color.RGBA{R: 240, G: 220, B: 180, A: 255}}))
	add(ecs.Add(l.w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 2}))
}

// ProjectileSystem removes projectiles that hit ground or fell below KillY.
type ProjectileSystem struct {
	KillY float64
}

func NewProjectileSystem(killY float64) *ProjectileSystem {
	return &ProjectileSystem{KillY: killY}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil || w.Paused() {
		return
	}

	for _, e := range w.Events().Impacts() {
		if ecs.Has(w, e, component.ProjectileComponent.Kind()) {
			ecs.DestroyEntity(w, e)
		}
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Projectile, t *component.Transform) {
		if t.Y < s.KillY {
			ecs.DestroyEntity(w, e)
		}
	})
}
