package entity

import (
	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
)

// NewSession returns the game state entity, creating it with a zero score
// when the world has none.
func NewSession(w *ecs.World) (ecs.Entity, error) {
	if e, ok := ecs.First(w, component.GameStateComponent.Kind()); ok {
		return e, nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), &component.GameState{Phase: component.PhasePlaying}); err != nil {
		return 0, err
	}
	return e, nil
}
