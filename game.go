package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/marblemaze/ecs/render"
	"github.com/milk9111/marblemaze/gravity"
	"github.com/milk9111/marblemaze/prefabs"
)

// GameOptions are the command line choices for one run.
type GameOptions struct {
	Level   string
	Debug   bool
	Watch   bool
	Pointer bool
}

type Game struct {
	opts   GameOptions
	spec   prefabs.MazeSpec
	logger *log.Logger

	maze     *maze
	renderer *render.Renderer
	hud      *HUD
	input    *Input
	pointer  *gravity.Pointer
	source   gravity.Source
	watcher  *prefabs.Watcher
	sensorOn bool
}

// NewGame loads the tuning file and the level. A level that cannot be
// loaded aborts setup.
func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		opts:    opts,
		logger:  log.WithPrefix("game"),
		pointer: &gravity.Pointer{},
	}

	spec, err := prefabs.LoadMazeSpec()
	if err != nil {
		g.logger.Warn("using default tuning", "error", err)
	}
	g.spec = spec

	accelErr := errPointerForced
	var accel gravity.Accelerometer
	if !opts.Pointer {
		delay := time.Duration(spec.Gravity.SensorDelayMS) * time.Millisecond
		a, err := gravity.OpenAccelerometer(delay)
		if err == nil {
			accel = a
			g.sensorOn = true
		}
		accelErr = err
	}
	g.source = gravity.Select(accel, accelErr, g.pointer, spec.Gravity)
	if g.sensorOn {
		g.logger.Info("steering with the accelerometer")
	} else {
		g.logger.Info("steering with the pointer", "reason", accelErr)
	}

	if err := g.rebuild(spec); err != nil {
		g.Close()
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			g.logger.Warn("file watching disabled", "error", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

var errPointerForced = errors.New("pointer requested")

// rebuild replaces the world with a fresh copy of the level. On failure the
// current world stays.
func (g *Game) rebuild(spec prefabs.MazeSpec) error {
	hud := NewHUD(spec)
	m, err := loadMaze(g.opts.Level, spec, hud, g.source)
	if err != nil {
		return err
	}

	g.spec = spec
	g.maze = m
	g.hud = hud
	g.renderer = render.NewRenderer(spec.Scene.Height)
	g.input = NewInput(g.pointer, spec.Scene.Height)
	g.pointer.Cancel()
	g.logger.Info("level loaded", "level", levelName(g.opts.Level), "bodies", m.stats.Total())
	return nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.DebugPressed {
		g.opts.Debug = !g.opts.Debug
	}
	if g.input.RestartPressed && !g.hud.Open() {
		g.maze.RequestRestart()
	}

	g.hud.UI().Update()
	g.maze.Step()
	g.reloadChanged()
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, err := range drainErrors(g.watcher.Errors) {
		g.logger.Warn("watch error", "error", err)
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}

	spec := g.spec
	reload := false
	for _, p := range changed {
		switch {
		case prefabs.IsSpecFile(p) && filepath.Base(p) == prefabs.MazeFile:
			next, err := prefabs.LoadMazeSpec()
			if err != nil {
				g.logger.Warn("tuning reload failed", "file", p, "error", err)
				continue
			}
			spec = next
			reload = true
		case prefabs.IsLevelFile(p):
			reload = true
		}
	}
	if !reload {
		return
	}
	if err := g.rebuild(spec); err != nil {
		g.logger.Warn("reload failed, keeping current level", "error", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.maze.world, screen)

	if g.opts.Debug {
		render.DrawPhysicsDebug(g.maze.physics.Space(), screen, g.spec.Scene.Height)
		phase := "none"
		if state, ok := g.maze.Session(); ok {
			phase = state.Phase.String()
		}
		render.DrawStats(screen, g.maze.physics.Gravity(), g.maze.physics.BodyCount(), phase)
	}

	g.hud.UI().Draw(screen)
}

func (g *Game) Size() (float64, float64) {
	return g.spec.Scene.Width, g.spec.Scene.Height
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.Size()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if g.sensorOn {
		if err := gravity.CloseAccelerometer(); err != nil {
			g.logger.Warn("disable accelerometer", "error", err)
		}
		g.sensorOn = false
	}
}

func drainErrors(ch <-chan error) []error {
	var errs []error
	for {
		select {
		case err := <-ch:
			errs = append(errs, err)
		default:
			return errs
		}
	}
}

func levelName(ref string) string {
	if ref == "" {
		return "default"
	}
	return ref
}
