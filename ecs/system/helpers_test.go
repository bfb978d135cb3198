package system

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/ecs/entity"
	"github.com/milk9111/marblemaze/levels"
	"github.com/milk9111/marblemaze/prefabs"
)

type recordingPresenter struct {
	scores  []int
	titles  []string
	choices [][]Choice
}

func (p *recordingPresenter) ShowScore(score int) {
	p.scores = append(p.scores, score)
}

func (p *recordingPresenter) ShowChoices(title string, choices []Choice) {
	p.titles = append(p.titles, title)
	p.choices = append(p.choices, choices)
}

func (p *recordingPresenter) lastScore() int {
	if len(p.scores) == 0 {
		return 0
	}
	return p.scores[len(p.scores)-1]
}

type fixedSource struct {
	g  cp.Vector
	ok bool
}

func (s fixedSource) Sample(cp.Vector) (cp.Vector, bool) {
	return s.g, s.ok
}

type testGame struct {
	w         *ecs.World
	spec      prefabs.MazeSpec
	physics   *PhysicsSystem
	contacts  *ContactSystem
	state     *GameStateSystem
	scheduler *ecs.Scheduler
	presenter *recordingPresenter
}

// mazeRows returns a 12 row, 3 column maze with the given rows (file order)
// replaced. The avatar starts in cell (1, 1) of the file.
func mazeRows(rows map[int]string) string {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "..."
		if r, ok := rows[i]; ok {
			lines[i] = r
		}
	}
	return strings.Join(lines, "\n")
}

func newTestGame(t *testing.T, src string, source fixedSource) *testGame {
	t.Helper()
	grid, err := levels.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	g := &testGame{
		w:         ecs.NewWorld(),
		spec:      prefabs.DefaultMazeSpec(),
		presenter: &recordingPresenter{},
	}
	if _, err := entity.LoadLevelToWorld(g.w, grid, g.spec); err != nil {
		t.Fatalf("load level: %v", err)
	}
	if _, err := entity.NewSession(g.w); err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := entity.NewAvatar(g.w, g.spec); err != nil {
		t.Fatalf("new avatar: %v", err)
	}

	g.physics = NewPhysicsSystem(g.spec.Gravity.PixelsPerMeter)
	g.state = NewGameStateSystem(g.spec, g.presenter)
	g.contacts = NewContactSystem(g.state)
	g.scheduler = ecs.NewScheduler(
		g.physics,
		g.contacts,
		NewSequenceSystem(),
		g.state,
		NewGravitySystem(source, g.physics),
		NewSpinSystem(),
	)
	return g
}

func (g *testGame) tick(n int) {
	for i := 0; i < n; i++ {
		g.scheduler.Update(g.w)
	}
}

func (g *testGame) session(t *testing.T) *component.GameState {
	t.Helper()
	state, ok := sessionState(g.w)
	if !ok {
		t.Fatalf("no session")
	}
	return state
}

func (g *testGame) avatar(t *testing.T) ecs.Entity {
	t.Helper()
	if n := ecs.Count(g.w, component.AvatarTagComponent.Kind()); n != 1 {
		t.Fatalf("expected exactly one avatar, got %d", n)
	}
	e, _ := ecs.First(g.w, component.AvatarTagComponent.Kind())
	return e
}

func (g *testGame) first(t *testing.T, tag component.BodyTag) ecs.Entity {
	t.Helper()
	var found ecs.Entity
	ecs.ForEach(g.w, component.BodyComponent.Kind(), func(e ecs.Entity, b *component.Body) {
		if b.Tag == tag && found == 0 {
			found = e
		}
	})
	if found == 0 {
		t.Fatalf("no %s body", tag)
	}
	return found
}

func (g *testGame) all(tag component.BodyTag) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(g.w, component.BodyComponent.Kind(), func(e ecs.Entity, b *component.Body) {
		if b.Tag == tag {
			out = append(out, e)
		}
	})
	return out
}
