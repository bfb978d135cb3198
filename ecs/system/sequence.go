package system

import (
	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
)

// SequenceSystem advances scripted moves one frame per tick. A finished
// sequence is removed and replaced by the request its kind calls for.
type SequenceSystem struct{}

func NewSequenceSystem() *SequenceSystem { return &SequenceSystem{} }

func (s *SequenceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.SequenceComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, seq *component.Sequence, t *component.Transform) {
		if seq.Done {
			return
		}
		seq.Elapsed++
		frames := seq.Frames
		if frames < 1 {
			frames = 1
		}
		p := float64(seq.Elapsed) / float64(frames)
		if p > 1 {
			p = 1
		}
		t.X = lerp(seq.FromX, seq.ToX, p)
		t.Y = lerp(seq.FromY, seq.ToY, p)
		scale := lerp(seq.FromScale, seq.ToScale, p)
		t.ScaleX = scale
		t.ScaleY = scale

		if seq.Elapsed < frames {
			return
		}
		seq.Done = true
		kind := seq.Kind
		_ = ecs.Remove(w, e, component.SequenceComponent.Kind())

		switch kind {
		case component.SequenceDeath:
			_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
		case component.SequenceGoal:
			_ = ecs.Add(w, e, component.GoalPromptRequestComponent.Kind(), &component.GoalPromptRequest{})
		}
	})
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
