package component

import "image/color"

// SpriteShape selects how the renderer draws an entity.
type SpriteShape int

const (
	SpriteRect SpriteShape = iota
	SpriteCircle
	SpriteVortex
	SpriteBackdrop
)

// Sprite is a flat-shaded visual centred on the entity transform.
type Sprite struct {
	Shape  SpriteShape
	Width  float64
	Height float64
	Radius float64
	Color  color.RGBA
	Accent color.RGBA
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
