package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/ecs/entity"
	"github.com/milk9111/marblemaze/prefabs"
)

// TicksPerSecond is the fixed update rate sequences are timed against.
const TicksPerSecond = 60

// Choice is one option of a modal prompt.
type Choice struct {
	Label    string
	OnSelect func()
}

// Presenter displays game state. It is told about changes after they have
// been applied and never mutates state itself.
type Presenter interface {
	ShowScore(score int)
	ShowChoices(title string, choices []Choice)
}

type nopPresenter struct{}

func (nopPresenter) ShowScore(int)                {}
func (nopPresenter) ShowChoices(string, []Choice) {}

const (
	GoalTitle       = "You made it!"
	ChoiceNextLevel = "Play next level"
	ChoiceRestart   = "Restart level"
)

// GameStateSystem owns the session's score and phase. Contacts drive it
// through HitHazard, CollectPickup and ReachGoal; finished sequences and
// restart requests are handled in Update.
type GameStateSystem struct {
	spec      prefabs.MazeSpec
	presenter Presenter
	logger    *log.Logger
}

func NewGameStateSystem(spec prefabs.MazeSpec, presenter Presenter) *GameStateSystem {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	return &GameStateSystem{spec: spec, presenter: presenter, logger: log.WithPrefix("game")}
}

func (s *GameStateSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	restart := false
	ecs.ForEach(w, component.RestartRequestComponent.Kind(), func(e ecs.Entity, _ *component.RestartRequest) {
		restart = true
		ecs.DestroyEntity(w, e)
	})
	if restart {
		if err := s.Restart(w); err != nil {
			s.logger.Warn("restart failed", "error", err)
		}
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		s.respawn(w, e)
	})

	ecs.ForEach(w, component.GoalPromptRequestComponent.Kind(), func(e ecs.Entity, _ *component.GoalPromptRequest) {
		if ecs.Has(w, e, component.AvatarTagComponent.Kind()) {
			_ = ecs.Remove(w, e, component.GoalPromptRequestComponent.Kind())
		} else {
			ecs.DestroyEntity(w, e)
		}
		s.presentGoalChoices(w)
	})
}

// HitHazard starts the death sequence: the avatar leaves the physics world,
// loses a point and shrinks into the hazard.
func (s *GameStateSystem) HitHazard(w *ecs.World, avatar, hazard ecs.Entity) {
	state, ok := s.playing(w)
	if !ok {
		return
	}
	state.Phase = component.PhaseDying
	state.Score--
	s.logger.Debug("hit hazard", "score", state.Score)

	s.detach(w, avatar)
	s.startSequence(w, avatar, hazard, component.SequenceDeath, s.spec.Sequence.DeathSeconds, s.spec.Sequence.ShrinkScale)
	s.presenter.ShowScore(state.Score)
}

// CollectPickup hides a pickup and scores it. A hidden pickup never scores
// again until a restart.
func (s *GameStateSystem) CollectPickup(w *ecs.World, _ ecs.Entity, pickup ecs.Entity) {
	state, ok := s.playing(w)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, pickup, component.PickupComponent.Kind())
	if !ok || p.Collected {
		return
	}
	p.Collected = true
	setPickupVisible(w, pickup, false)
	state.Score++
	s.logger.Debug("collected pickup", "score", state.Score)
	s.presenter.ShowScore(state.Score)
}

// ReachGoal ends the level: the avatar rolls into the goal and the end of
// level choices are shown once it arrives.
func (s *GameStateSystem) ReachGoal(w *ecs.World, avatar, goal ecs.Entity) {
	state, ok := s.playing(w)
	if !ok {
		return
	}
	state.Phase = component.PhaseGameOver
	s.logger.Debug("reached goal", "score", state.Score)

	s.detach(w, avatar)
	s.startSequence(w, avatar, goal, component.SequenceGoal, s.spec.Sequence.GoalSeconds, 1)
}

// Restart resets the score, restores every pickup and replaces the avatar
// with a fresh one at the start position.
func (s *GameStateSystem) Restart(w *ecs.World) error {
	ecs.ForEach(w, component.AvatarTagComponent.Kind(), func(e ecs.Entity, _ *component.AvatarTag) {
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, p *component.Pickup) {
		p.Collected = false
		setPickupVisible(w, e, true)
	})

	if _, err := entity.NewAvatar(w, s.spec); err != nil {
		return err
	}

	sessionEnt, err := entity.NewSession(w)
	if err != nil {
		return err
	}
	state, _ := ecs.Get(w, sessionEnt, component.GameStateComponent.Kind())
	state.Score = 0
	state.Phase = component.PhasePlaying
	s.logger.Debug("level restarted")
	s.presenter.ShowScore(state.Score)
	return nil
}

// RequestRestart queues a restart for the next Update. UI callbacks use it so
// the world is only changed from the game loop.
func (s *GameStateSystem) RequestRestart(w *ecs.World) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.RestartRequestComponent.Kind(), &component.RestartRequest{})
}

func (s *GameStateSystem) respawn(w *ecs.World, dying ecs.Entity) {
	ecs.DestroyEntity(w, dying)
	if _, err := entity.NewAvatar(w, s.spec); err != nil {
		s.logger.Warn("respawn failed", "error", err)
		return
	}
	if state, ok := sessionState(w); ok && state.Phase == component.PhaseDying {
		state.Phase = component.PhasePlaying
	}
	s.logger.Debug("avatar respawned")
}

func (s *GameStateSystem) presentGoalChoices(w *ecs.World) {
	s.presenter.ShowChoices(GoalTitle, []Choice{
		{
			Label: ChoiceNextLevel,
			OnSelect: func() {
				// Single level for now; ask again.
				e := ecs.CreateEntity(w)
				_ = ecs.Add(w, e, component.GoalPromptRequestComponent.Kind(), &component.GoalPromptRequest{})
			},
		},
		{
			Label:    ChoiceRestart,
			OnSelect: func() { s.RequestRestart(w) },
		},
	})
}

func (s *GameStateSystem) playing(w *ecs.World) (*component.GameState, bool) {
	state, ok := sessionState(w)
	if !ok || state.Phase != component.PhasePlaying {
		return nil, false
	}
	return state, true
}

// detach takes the avatar out of the physics world. Its transform and sprite
// stay so the sequence can still be drawn.
func (s *GameStateSystem) detach(w *ecs.World, avatar ecs.Entity) {
	if pb, ok := ecs.Get(w, avatar, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pb.Body.SetVelocityVector(cp.Vector{})
		pb.Body.SetAngularVelocity(0)
	}
	_ = ecs.Remove(w, avatar, component.PhysicsBodyComponent.Kind())
	_ = ecs.Remove(w, avatar, component.BodyComponent.Kind())
	_ = ecs.Remove(w, avatar, component.CollisionLayerComponent.Kind())
}

func (s *GameStateSystem) startSequence(w *ecs.World, avatar, target ecs.Entity, kind component.SequenceKind, seconds, toScale float64) {
	from, ok := ecs.Get(w, avatar, component.TransformComponent.Kind())
	if !ok {
		return
	}
	seq := &component.Sequence{
		Kind:      kind,
		Frames:    prefabs.SecondsToFrames(seconds, TicksPerSecond),
		FromX:     from.X,
		FromY:     from.Y,
		ToX:       from.X,
		ToY:       from.Y,
		FromScale: 1,
		ToScale:   toScale,
	}
	if to, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		seq.ToX = to.X
		seq.ToY = to.Y
	}
	_ = ecs.Add(w, avatar, component.SequenceComponent.Kind(), seq)
}

func setPickupVisible(w *ecs.World, e ecs.Entity, visible bool) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = !visible
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		pb.Disabled = !visible
	}
}
