package system

import (
	"github.com/charmbracelet/log"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
)

// ContactHandler receives resolved avatar contacts.
type ContactHandler interface {
	HitHazard(w *ecs.World, avatar, hazard ecs.Entity)
	CollectPickup(w *ecs.World, avatar, pickup ecs.Entity)
	ReachGoal(w *ecs.World, avatar, goal ecs.Entity)
}

// ContactSystem drains the contact queue after the physics step and
// dispatches each pair by body tag, in either order.
type ContactSystem struct {
	handler ContactHandler
	logger  *log.Logger
	ignored int
}

func NewContactSystem(handler ContactHandler) *ContactSystem {
	return &ContactSystem{handler: handler, logger: log.WithPrefix("contact")}
}

// Ignored reports how many contacts were dropped so far.
func (s *ContactSystem) Ignored() int {
	return s.ignored
}

func (s *ContactSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.resolve(w, evt)
	}
}

func (s *ContactSystem) resolve(w *ecs.World, evt ecs.ContactEvent) {
	if !ecs.IsAlive(w, evt.A) || !ecs.IsAlive(w, evt.B) {
		s.ignore("dead entity", evt)
		return
	}
	a, okA := ecs.Get(w, evt.A, component.BodyComponent.Kind())
	b, okB := ecs.Get(w, evt.B, component.BodyComponent.Kind())
	if !okA || !okB {
		s.ignore("untagged body", evt)
		return
	}

	avatar, other, tag := evt.A, evt.B, b.Tag
	switch {
	case a.Tag == component.TagAvatar:
	case b.Tag == component.TagAvatar:
		avatar, other, tag = evt.B, evt.A, a.Tag
	default:
		s.ignore("no avatar", evt)
		return
	}

	if s.handler == nil {
		return
	}
	switch tag {
	case component.TagHazard:
		s.handler.HitHazard(w, avatar, other)
	case component.TagPickup:
		s.handler.CollectPickup(w, avatar, other)
	case component.TagGoal:
		s.handler.ReachGoal(w, avatar, other)
	default:
		s.ignore("unexpected body "+tag.String(), evt)
	}
}

func (s *ContactSystem) ignore(reason string, evt ecs.ContactEvent) {
	s.ignored++
	s.logger.Debug("contact ignored", "reason", reason, "a", evt.A, "b", evt.B)
}
