package entity

import (
	"fmt"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/levels"
	"github.com/milk9111/marblemaze/prefabs"
)

// LevelStats counts the bodies a level compiled to.
type LevelStats struct {
	Walls   int
	Hazards int
	Pickups int
	Goals   int
}

func (s LevelStats) Total() int {
	return s.Walls + s.Hazards + s.Pickups + s.Goals
}

// CellSize is the side of one grid cell in scene units. Level files and the
// wall sprite are laid out against it, so it is not tunable.
const CellSize = 64.0

// CellCenter returns the scene position of the centre of a cell. worldRow
// counts up from the bottom of the scene.
func CellCenter(col, worldRow int) (float64, float64) {
	const half = CellSize / 2
	return float64(col)*CellSize + half, float64(worldRow)*CellSize + half
}

// LoadLevelToWorld compiles a parsed grid into static level entities: a
// backdrop first, then one body per non-empty cell. It does not create the
// avatar or touch the session.
func LoadLevelToWorld(w *ecs.World, grid *levels.Grid, spec prefabs.MazeSpec) (LevelStats, error) {
	var stats LevelStats
	if w == nil || grid == nil {
		return stats, fmt.Errorf("level: nil world or grid")
	}

	if err := addBackdrop(w, spec); err != nil {
		return stats, err
	}

	for r := 0; r < grid.Height; r++ {
		row := grid.WorldRow(r)
		for c := 0; c < grid.Width; c++ {
			x, y := CellCenter(c, row)
			var err error
			switch grid.At(r, c) {
			case levels.CellWall:
				err = addWall(w, spec, x, y)
				stats.Walls++
			case levels.CellHazard:
				err = addHazard(w, spec, x, y)
				stats.Hazards++
			case levels.CellPickup:
				err = addPickup(w, spec, x, y)
				stats.Pickups++
			case levels.CellGoal:
				err = addGoal(w, spec, x, y)
				stats.Goals++
			default:
				continue
			}
			if err != nil {
				return stats, fmt.Errorf("level: cell (%d,%d): %w", c, r, err)
			}
		}
	}

	return stats, nil
}

func addBackdrop(w *ecs.World, spec prefabs.MazeSpec) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.Scene.Width / 2,
		Y:      spec.Scene.Height / 2,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Shape:  component.SpriteBackdrop,
		Width:  spec.Scene.Width,
		Height: spec.Scene.Height,
		Color:  spec.Background.RGBA,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Layers.Background})
}

func addWall(w *ecs.World, spec prefabs.MazeSpec, x, y float64) error {
	_, err := addStaticBody(w, component.TagWall, x, y,
		component.PhysicsBody{
			Width:      spec.Wall.Width,
			Height:     spec.Wall.Height,
			Friction:   spec.Wall.Friction,
			Elasticity: spec.Wall.Elasticity,
		},
		component.Sprite{
			Shape:  component.SpriteRect,
			Width:  spec.Wall.Width,
			Height: spec.Wall.Height,
			Color:  spec.Wall.Color.RGBA,
		},
		spec.Layers.Static,
	)
	return err
}

func addHazard(w *ecs.World, spec prefabs.MazeSpec, x, y float64) error {
	e, err := addStaticBody(w, component.TagHazard, x, y,
		component.PhysicsBody{Radius: spec.Hazard.Radius},
		component.Sprite{
			Shape:  component.SpriteVortex,
			Radius: spec.Hazard.Radius,
			Color:  spec.Hazard.Color.RGBA,
			Accent: spec.Hazard.Accent.RGBA,
		},
		spec.Layers.Static,
	)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{RadiansPerSecond: spec.Hazard.RadiansPerSecond})
}

func addPickup(w *ecs.World, spec prefabs.MazeSpec, x, y float64) error {
	e, err := addStaticBody(w, component.TagPickup, x, y,
		component.PhysicsBody{Radius: spec.Pickup.Radius},
		component.Sprite{
			Shape:  component.SpriteCircle,
			Radius: spec.Pickup.Radius,
			Color:  spec.Pickup.Color.RGBA,
		},
		spec.Layers.Items,
	)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{})
}

func addGoal(w *ecs.World, spec prefabs.MazeSpec, x, y float64) error {
	_, err := addStaticBody(w, component.TagGoal, x, y,
		component.PhysicsBody{Radius: spec.Goal.Radius},
		component.Sprite{
			Shape:  component.SpriteCircle,
			Radius: spec.Goal.Radius,
			Color:  spec.Goal.Color.RGBA,
		},
		spec.Layers.Items,
	)
	return err
}

func addStaticBody(w *ecs.World, tag component.BodyTag, x, y float64, body component.PhysicsBody, sprite component.Sprite, layer int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	body.Static = true
	collision := component.CollisionPolicy(tag)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Tag: tag}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &collision); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return 0, err
	}
	return e, nil
}
