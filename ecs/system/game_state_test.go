package system

import (
	"testing"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
)

func TestCollectPickupIsIdempotent(t *testing.T) {
	g := newTestGame(t, mazeRows(map[int]string{5: ".s."}), fixedSource{})
	avatar := g.avatar(t)
	pickup := g.first(t, component.TagPickup)

	g.state.CollectPickup(g.w, avatar, pickup)
	g.state.CollectPickup(g.w, avatar, pickup)

	if score := g.session(t).Score; score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
	if len(g.presenter.scores) != 1 || g.presenter.scores[0] != 1 {
		t.Fatalf("expected one score update of 1, got %v", g.presenter.scores)
	}
	if !ecs.IsAlive(g.w, pickup) {
		t.Fatalf("pickup must be hidden, not destroyed")
	}
	sprite, _ := ecs.Get(g.w, pickup, component.SpriteComponent.Kind())
	body, _ := ecs.Get(g.w, pickup, component.PhysicsBodyComponent.Kind())
	if !sprite.Hidden || !body.Disabled {
		t.Fatalf("expected hidden and disabled pickup, got hidden=%v disabled=%v", sprite.Hidden, body.Disabled)
	}
}

func TestHitHazardStartsDeathSequence(t *testing.T) {
	g := newTestGame(t, mazeRows(map[int]string{5: ".vs"}), fixedSource{})
	avatar := g.avatar(t)
	hazard := g.first(t, component.TagHazard)
	hazardPos, _ := ecs.Get(g.w, hazard, component.TransformComponent.Kind())

	g.state.HitHazard(g.w, avatar, hazard)

	state := g.session(t)
	if state.Phase != component.PhaseDying || !state.Over() {
		t.Fatalf("expected dying, got %s", state.Phase)
	}
	if state.Score != -1 {
		t.Fatalf("expected score -1, got %d", state.Score)
	}
	if g.presenter.lastScore() != -1 {
		t.Fatalf("expected presenter to show -1, got %v", g.presenter.scores)
	}
	if ecs.Has(g.w, avatar, component.PhysicsBodyComponent.Kind()) || ecs.Has(g.w, avatar, component.BodyComponent.Kind()) {
		t.Fatalf("expected avatar detached from physics")
	}
	seq, ok := ecs.Get(g.w, avatar, component.SequenceComponent.Kind())
	if !ok {
		t.Fatalf("expected a death sequence")
	}
	if seq.Kind != component.SequenceDeath || seq.Frames != 15 {
		t.Fatalf("unexpected sequence %+v", *seq)
	}
	if seq.ToX != hazardPos.X || seq.ToY != hazardPos.Y || seq.ToScale != 0.0001 {
		t.Fatalf("expected shrink into hazard, got %+v", *seq)
	}

	g.state.HitHazard(g.w, avatar, hazard)
	g.state.CollectPickup(g.w, avatar, g.first(t, component.TagPickup))
	if state.Score != -1 {
		t.Fatalf("contacts while dying must be ignored, score %d", state.Score)
	}
}

func TestDeathSequenceRespawnsAvatar(t *testing.T) {
	g := newTestGame(t, mazeRows(map[int]string{5: ".v."}), fixedSource{})
	dying := g.avatar(t)
	g.state.HitHazard(g.w, dying, g.first(t, component.TagHazard))

	seqSys := NewSequenceSystem()
	for i := 0; i < 14; i++ {
		seqSys.Update(g.w)
	}
	if ecs.Has(g.w, dying, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("respawn requested before the sequence finished")
	}
	seqSys.Update(g.w)
	if !ecs.Has(g.w, dying, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("expected respawn request after 15 frames")
	}
	tr, _ := ecs.Get(g.w, dying, component.TransformComponent.Kind())
	if tr.ScaleX != 0.0001 {
		t.Fatalf("expected avatar shrunk, scale %v", tr.ScaleX)
	}

	g.state.Update(g.w)

	if ecs.IsAlive(g.w, dying) {
		t.Fatalf("expected dying avatar destroyed")
	}
	fresh := g.avatar(t)
	tr, _ = ecs.Get(g.w, fresh, component.TransformComponent.Kind())
	if tr.X != 96 || tr.Y != 672 {
		t.Fatalf("expected respawn at start, got (%v,%v)", tr.X, tr.Y)
	}
	if body, ok := ecs.Get(g.w, fresh, component.BodyComponent.Kind()); !ok || body.Tag != component.TagAvatar {
		t.Fatalf("expected fresh avatar body")
	}
	state := g.session(t)
	if state.Phase != component.PhasePlaying || state.Score != -1 {
		t.Fatalf("expected playing with score -1, got %+v", *state)
	}
}

func TestReachGoalPresentsChoices(t *testing.T) {
	g := newTestGame(t, mazeRows(map[int]string{5: ".f."}), fixedSource{})
	avatar := g.avatar(t)
	g.state.ReachGoal(g.w, avatar, g.first(t, component.TagGoal))

	if g.session(t).Phase != component.PhaseGameOver {
		t.Fatalf("expected game over")
	}
	g.tick(15)
	if len(g.presenter.choices) != 1 {
		t.Fatalf("expected the end of level prompt once, got %d", len(g.presenter.choices))
	}
	if g.presenter.titles[0] != GoalTitle {
		t.Fatalf("unexpected title %q", g.presenter.titles[0])
	}
	choices := g.presenter.choices[0]
	if len(choices) != 2 || choices[0].Label != ChoiceNextLevel || choices[1].Label != ChoiceRestart {
		t.Fatalf("unexpected choices %+v", choices)
	}

	choices[0].OnSelect()
	g.tick(1)
	if len(g.presenter.choices) != 2 {
		t.Fatalf("expected next level to prompt again, got %d prompts", len(g.presenter.choices))
	}

	g.presenter.choices[1][1].OnSelect()
	if g.session(t).Phase != component.PhaseGameOver {
		t.Fatalf("restart must wait for the next tick")
	}
	g.tick(1)
	state := g.session(t)
	if state.Phase != component.PhasePlaying || state.Score != 0 {
		t.Fatalf("expected restarted session, got %+v", *state)
	}
	if n := ecs.Count(g.w, component.RestartRequestComponent.Kind()); n != 0 {
		t.Fatalf("expected restart request consumed, %d left", n)
	}
}

func TestRestartRestoresLevel(t *testing.T) {
	g := newTestGame(t, mazeRows(map[int]string{5: "s.s", 7: ".s."}), fixedSource{})
	avatar := g.avatar(t)
	pickups := g.all(component.TagPickup)
	if len(pickups) != 3 {
		t.Fatalf("expected 3 pickups, got %d", len(pickups))
	}
	g.state.CollectPickup(g.w, avatar, pickups[0])
	g.state.CollectPickup(g.w, avatar, pickups[1])

	state := g.session(t)
	state.Score = 7

	g.state.ReachGoal(g.w, avatar, pickups[2])
	if err := g.state.Restart(g.w); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if state.Score != 0 || state.Phase != component.PhasePlaying {
		t.Fatalf("expected score 0 and playing, got %+v", *state)
	}
	if g.presenter.lastScore() != 0 {
		t.Fatalf("expected presenter to show 0, got %v", g.presenter.scores)
	}
	if ecs.IsAlive(g.w, avatar) {
		t.Fatalf("expected old avatar destroyed")
	}
	fresh := g.avatar(t)
	tr, _ := ecs.Get(g.w, fresh, component.TransformComponent.Kind())
	if tr.X != 96 || tr.Y != 672 {
		t.Fatalf("expected avatar at start, got (%v,%v)", tr.X, tr.Y)
	}
	for _, p := range pickups {
		sprite, _ := ecs.Get(g.w, p, component.SpriteComponent.Kind())
		body, _ := ecs.Get(g.w, p, component.PhysicsBodyComponent.Kind())
		pc, _ := ecs.Get(g.w, p, component.PickupComponent.Kind())
		if sprite.Hidden || body.Disabled || pc.Collected {
			t.Fatalf("expected pickup %v restored", p)
		}
	}

	g.state.CollectPickup(g.w, fresh, pickups[0])
	if state.Score != 1 {
		t.Fatalf("expected restored pickup to score again, got %d", state.Score)
	}
}

func TestNegativeScoreIsKept(t *testing.T) {
	g := newTestGame(t, mazeRows(map[int]string{5: ".v."}), fixedSource{})
	for i := 0; i < 3; i++ {
		g.state.HitHazard(g.w, g.avatar(t), g.first(t, component.TagHazard))
		g.tick(15)
	}
	if score := g.session(t).Score; score != -3 {
		t.Fatalf("expected score -3, got %d", score)
	}
}
