// Package render draws the maze with flat vector shapes. The scene uses y up
// and the screen y down, so every y is flipped against the scene height.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/ecs/render/drawlist"
)

const vortexArms = 3

type Renderer struct {
	sceneHeight float64
}

func NewRenderer(sceneHeight float64) *Renderer {
	return &Renderer{sceneHeight: sceneHeight}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range drawlist.Ordered(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden {
			continue
		}

		scale := t.ScaleX
		if scale == 0 {
			scale = 1
		}
		x := float32(t.X)
		y := float32(r.sceneHeight - t.Y)

		switch s.Shape {
		case component.SpriteBackdrop:
			screen.Fill(s.Color)
		case component.SpriteRect:
			wd := float32(s.Width * scale)
			ht := float32(s.Height * scale)
			vector.FillRect(screen, x-wd/2, y-ht/2, wd, ht, s.Color, false)
			vector.StrokeRect(screen, x-wd/2, y-ht/2, wd, ht, 1, darken(s.Color), false)
		case component.SpriteCircle:
			vector.FillCircle(screen, x, y, float32(s.Radius*scale), s.Color, true)
		case component.SpriteVortex:
			drawVortex(screen, x, y, float32(s.Radius*scale), -t.Rotation, s.Color, s.Accent)
		}
	}
}

func drawVortex(screen *ebiten.Image, x, y, radius float32, angle float64, body, accent color.RGBA) {
	vector.FillCircle(screen, x, y, radius, body, true)
	for i := 0; i < vortexArms; i++ {
		a := angle + float64(i)*2*math.Pi/vortexArms
		// each arm curls a quarter turn from the rim to the centre
		var px, py float32
		for step := 0; step <= 8; step++ {
			f := float64(step) / 8
			r := float64(radius) * (1 - f)
			sa := a + f*math.Pi/2
			cx := x + float32(math.Cos(sa)*r)
			cy := y + float32(math.Sin(sa)*r)
			if step > 0 {
				vector.StrokeLine(screen, px, py, cx, cy, 3, accent, true)
			}
			px, py = cx, cy
		}
	}
	vector.StrokeCircle(screen, x, y, radius, 2, accent, true)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
