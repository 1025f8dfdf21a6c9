package component

import "image/color"

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

// Renderable draws the entity's physics shape filled with Color.
type Renderable struct {
	Color color.RGBA
}

var RenderableComponent = NewComponent[Renderable]()
