package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/common"
	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem fills every renderable physics shape. It has no update step.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	if w == nil || screen == nil {
		return
	}

	type drawable struct {
		e     ecs.Entity
		layer int
	}
	var items []drawable
	ecs.ForEach2(w, component.RenderableComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.Renderable, _ *component.PhysicsBody) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{e: e, layer: layer})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	scale := common.PixelsPerUnit * zoom
	for _, item := range items {
		rend, _ := ecs.Get(w, item.e, component.RenderableComponent.Kind())
		body, _ := ecs.Get(w, item.e, component.PhysicsBodyComponent.Kind())
		pos := bodyCenter(w, item.e, body)
		fill := rend.Color
		if anim, ok := ecs.Get(w, item.e, component.AnimationComponent.Kind()); ok {
			fill = animationTint(anim, fill)
		}
		if wf, ok := ecs.Get(w, item.e, component.WhiteFlashComponent.Kind()); ok && wf.On {
			fill = colornames.White
		}

		x, y := WorldToScreen(pos, camX, camY, zoom)
		if body.Radius > 0 {
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(body.Radius*scale), fill, true)
			continue
		}
		width, height := body.Width*scale, body.Height*scale
		vector.DrawFilledRect(screen, float32(x-width/2), float32(y-height/2), float32(width), float32(height), fill, false)
	}
}

// WorldToScreen maps a world point to screen pixels for a camera centred on
// (camX, camY). Screen Y grows downwards.
func WorldToScreen(p cp.Vector, camX, camY, zoom float64) (float64, float64) {
	scale := common.PixelsPerUnit * zoom
	return (p.X-camX)*scale + common.BaseWidth/2, common.BaseHeight/2 - (p.Y-camY)*scale
}

func bodyCenter(w *ecs.World, e ecs.Entity, body *component.PhysicsBody) cp.Vector {
	if body.Body != nil && body.Kind != component.BodySolid && body.Kind != component.BodySensor {
		return body.Body.Position()
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{}
}

// animationTint recolours the character by its most specific animation flag.
func animationTint(anim *component.Animation, base color.RGBA) color.RGBA {
	switch {
	case anim.Bool(character.AnimAttacking):
		return colornames.Orange
	case anim.Bool(character.AnimGliding):
		return colornames.Skyblue
	case anim.Bool(character.AnimJumping):
		return colornames.Gold
	case anim.Bool(character.AnimFalling):
		return colornames.Goldenrod
	case anim.Bool(character.AnimCrouching):
		return colornames.Darkseagreen
	case anim.Bool(character.AnimRunning):
		return colornames.Limegreen
	}
	return base
}
