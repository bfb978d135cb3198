package main

import (
	"fmt"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/ecs/entity"
	"github.com/milk9111/marblemaze/ecs/system"
	"github.com/milk9111/marblemaze/gravity"
	"github.com/milk9111/marblemaze/levels"
	"github.com/milk9111/marblemaze/prefabs"
)

// maze is one loaded level: its world and the systems that run it.
type maze struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	state     *system.GameStateSystem
	stats     entity.LevelStats
}

// loadMaze builds a fresh world for a level. Nothing is kept when the level
// fails to load.
func loadMaze(ref string, spec prefabs.MazeSpec, presenter system.Presenter, source gravity.Source) (*maze, error) {
	grid, err := levels.Load(ref)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	stats, err := entity.LoadLevelToWorld(w, grid, spec)
	if err != nil {
		return nil, fmt.Errorf("compile level %s: %w", ref, err)
	}
	if _, err := entity.NewSession(w); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if _, err := entity.NewAvatar(w, spec); err != nil {
		return nil, fmt.Errorf("create avatar: %w", err)
	}

	physics := system.NewPhysicsSystem(spec.Gravity.PixelsPerMeter)
	state := system.NewGameStateSystem(spec, presenter)

	systems := []ecs.System{
		physics,
		system.NewContactSystem(state),
		system.NewSequenceSystem(),
		state,
	}
	if source != nil {
		systems = append(systems, system.NewGravitySystem(source, physics))
	}
	systems = append(systems, system.NewSpinSystem())

	m := &maze{
		world:     w,
		scheduler: ecs.NewScheduler(systems...),
		physics:   physics,
		state:     state,
		stats:     stats,
	}
	return m, nil
}

func (m *maze) Step() {
	m.scheduler.Update(m.world)
}

func (m *maze) Session() (component.GameState, bool) {
	e, ok := ecs.First(m.world, component.GameStateComponent.Kind())
	if !ok {
		return component.GameState{}, false
	}
	state, ok := ecs.Get(m.world, e, component.GameStateComponent.Kind())
	if !ok {
		return component.GameState{}, false
	}
	return *state, true
}

func (m *maze) RequestRestart() {
	m.state.RequestRestart(m.world)
}
