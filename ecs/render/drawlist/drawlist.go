// Package drawlist orders drawable entities for the renderer without
// depending on ebiten.
package drawlist

import (
	"sort"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
)

// Ordered returns every entity with a Sprite and a Transform, sorted by
// render layer and then by entity handle. Handles grow with creation until a
// slot is recycled, so a freshly compiled level draws in creation order
// within a layer. Entities without a RenderLayer sit on layer 0. Hidden
// sprites are included; skipping them is the renderer's call.
func Ordered(w *ecs.World) []ecs.Entity {
	type item struct {
		e     ecs.Entity
		layer int
	}
	var items []item
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Sprite, _ *component.Transform) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, item{e: e, layer: layer})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	out := make([]ecs.Entity, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out
}
