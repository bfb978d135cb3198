package entity

import (
	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/prefabs"
)

// NewAvatar creates the ball at the level start position.
func NewAvatar(w *ecs.World, spec prefabs.MazeSpec) (ecs.Entity, error) {
	return NewAvatarAt(w, spec, spec.Start.X, spec.Start.Y)
}

// NewAvatarAt creates a ball with locked rotation and linear damping. It
// collides with walls and reports hazards, pickups and goals.
func NewAvatarAt(w *ecs.World, spec prefabs.MazeSpec, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	collision := component.CollisionPolicy(component.TagAvatar)

	if err := ecs.Add(w, e, component.AvatarTagComponent.Kind(), &component.AvatarTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Shape:  component.SpriteCircle,
		Radius: spec.Avatar.Radius,
		Color:  spec.Avatar.Color.RGBA,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Layers.Avatar}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Tag: component.TagAvatar}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &collision); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:        spec.Avatar.Radius,
		Mass:          spec.Avatar.Mass,
		Friction:      spec.Avatar.Friction,
		Elasticity:    spec.Avatar.Elasticity,
		LinearDamping: spec.Avatar.LinearDamping,
		FixedRotation: true,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
