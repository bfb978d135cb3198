package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/gravity"
)

// GravitySetter receives the gravity for the next physics step.
type GravitySetter interface {
	SetGravity(g cp.Vector)
}

// GravitySystem samples the input source once per tick while the game is in
// play. Without a sample the previous gravity stays in effect.
type GravitySystem struct {
	source gravity.Source
	target GravitySetter
}

func NewGravitySystem(source gravity.Source, target GravitySetter) *GravitySystem {
	return &GravitySystem{source: source, target: target}
}

func (s *GravitySystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.source == nil || s.target == nil {
		return
	}
	if state, ok := sessionState(w); ok && state.Over() {
		return
	}

	var pos cp.Vector
	if avatar, ok := ecs.First(w, component.AvatarTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, avatar, component.TransformComponent.Kind()); ok {
			pos = cp.Vector{X: t.X, Y: t.Y}
		}
	}

	if g, ok := s.source.Sample(pos); ok {
		s.target.SetGravity(g)
	}
}

func sessionState(w *ecs.World) (*component.GameState, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GameStateComponent.Kind())
}
