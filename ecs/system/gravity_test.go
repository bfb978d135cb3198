package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/ecs/entity"
)

type recordingSetter struct {
	set []cp.Vector
}

func (r *recordingSetter) SetGravity(g cp.Vector) {
	r.set = append(r.set, g)
}

type probeSource struct {
	seen cp.Vector
}

func (p *probeSource) Sample(avatar cp.Vector) (cp.Vector, bool) {
	p.seen = avatar
	return cp.Vector{X: 1}, true
}

func TestGravitySystemGating(t *testing.T) {
	tests := []struct {
		name   string
		phase  component.Phase
		source fixedSource
		want   int
	}{
		{name: "playing with sample", phase: component.PhasePlaying, source: fixedSource{g: cp.Vector{X: 3, Y: -4}, ok: true}, want: 1},
		{name: "playing without sample", phase: component.PhasePlaying, source: fixedSource{}, want: 0},
		{name: "dying", phase: component.PhaseDying, source: fixedSource{ok: true}, want: 0},
		{name: "game over", phase: component.PhaseGameOver, source: fixedSource{ok: true}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := entity.NewSession(w)
			if err != nil {
				t.Fatalf("new session: %v", err)
			}
			state, _ := ecs.Get(w, e, component.GameStateComponent.Kind())
			state.Phase = tt.phase

			setter := &recordingSetter{}
			NewGravitySystem(tt.source, setter).Update(w)

			if len(setter.set) != tt.want {
				t.Fatalf("expected %d gravity updates, got %d", tt.want, len(setter.set))
			}
			if tt.want == 1 && setter.set[0] != tt.source.g {
				t.Fatalf("expected %v, got %v", tt.source.g, setter.set[0])
			}
		})
	}
}

func TestGravitySystemSamplesAtAvatar(t *testing.T) {
	g := newTestGame(t, mazeRows(nil), fixedSource{})
	probe := &probeSource{}
	NewGravitySystem(probe, g.physics).Update(g.w)

	if want := (cp.Vector{X: 96, Y: 672}); probe.seen != want {
		t.Fatalf("expected sample at %v, got %v", want, probe.seen)
	}
	if got := g.physics.Gravity(); got != (cp.Vector{X: 1}) {
		t.Fatalf("expected gravity applied, got %v", got)
	}
}
