package entity

import (
	"testing"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
	"github.com/milk9111/marblemaze/levels"
	"github.com/milk9111/marblemaze/prefabs"
)

type placed struct {
	tag  component.BodyTag
	x, y float64
}

func compile(t *testing.T, src string) (*ecs.World, LevelStats) {
	t.Helper()
	grid, err := levels.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := ecs.NewWorld()
	stats, err := LoadLevelToWorld(w, grid, prefabs.DefaultMazeSpec())
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	return w, stats
}

func bodies(w *ecs.World) []placed {
	var out []placed
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Body, tr *component.Transform) {
		out = append(out, placed{tag: b.Tag, x: tr.X, y: tr.Y})
	})
	return out
}

func TestCellCenter(t *testing.T) {
	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 32, 32},
		{1, 0, 96, 32},
		{0, 1, 32, 96},
		{15, 11, 992, 736},
	}
	for _, tt := range tests {
		x, y := CellCenter(tt.col, tt.row)
		if x != tt.x || y != tt.y {
			t.Fatalf("CellCenter(%d,%d) = (%v,%v), want (%v,%v)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestLoadLevelToWorldScenario(t *testing.T) {
	w, stats := compile(t, "x x\n s \nf v")

	if stats != (LevelStats{Walls: 2, Hazards: 1, Pickups: 1, Goals: 1}) {
		t.Fatalf("unexpected stats %+v", stats)
	}

	want := map[placed]bool{
		{component.TagWall, 32, 160}:   true,
		{component.TagWall, 160, 160}:  true,
		{component.TagPickup, 96, 96}:  true,
		{component.TagGoal, 32, 32}:    true,
		{component.TagHazard, 160, 32}: true,
	}
	got := bodies(w)
	if len(got) != len(want) {
		t.Fatalf("expected %d bodies, got %d: %+v", len(want), len(got), got)
	}
	for _, b := range got {
		if !want[b] {
			t.Fatalf("unexpected body %+v", b)
		}
	}

	if n := ecs.Count(w, component.AvatarTagComponent.Kind()); n != 0 {
		t.Fatalf("expected no avatar from the compiler, got %d", n)
	}
	if n := ecs.Count(w, component.GameStateComponent.Kind()); n != 0 {
		t.Fatalf("expected compiler to leave game state alone, got %d", n)
	}
}

func TestLoadLevelToWorldCollisionLayers(t *testing.T) {
	w, _ := compile(t, "xvsf")

	ecs.ForEach3(w, component.BodyComponent.Kind(), component.CollisionLayerComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, b *component.Body, layer *component.CollisionLayer, pb *component.PhysicsBody) {
			if !pb.Static {
				t.Fatalf("%s: expected a static body", b.Tag)
			}
			if *layer != component.CollisionPolicy(b.Tag) {
				t.Fatalf("%s: layer %+v does not match policy", b.Tag, *layer)
			}
			switch b.Tag {
			case component.TagWall:
				if layer.Sensor() || layer.NotifiesOn != 0 {
					t.Fatalf("wall must block and stay silent: %+v", *layer)
				}
				if pb.Width != 64 || pb.Height != 64 {
					t.Fatalf("wall sized %vx%v", pb.Width, pb.Height)
				}
			case component.TagHazard, component.TagPickup, component.TagGoal:
				if !layer.Sensor() || layer.NotifiesOn != component.CategoryAvatar {
					t.Fatalf("%s must be an avatar-notifying sensor: %+v", b.Tag, *layer)
				}
				if pb.Radius <= 0 {
					t.Fatalf("%s has no radius", b.Tag)
				}
			default:
				t.Fatalf("unexpected tag %s", b.Tag)
			}
		})
}

func TestLoadLevelToWorldExtras(t *testing.T) {
	w, _ := compile(t, "vvs.")

	if n := ecs.Count(w, component.SpinComponent.Kind()); n != 2 {
		t.Fatalf("expected each hazard to spin, got %d spinners", n)
	}
	if n := ecs.Count(w, component.PickupComponent.Kind()); n != 1 {
		t.Fatalf("expected one pickup, got %d", n)
	}

	bg, ok := ecs.First(w, component.BackgroundTagComponent.Kind())
	if !ok {
		t.Fatalf("expected a backdrop")
	}
	layer, _ := ecs.Get(w, bg, component.RenderLayerComponent.Kind())
	lowest := true
	ecs.ForEach(w, component.RenderLayerComponent.Kind(), func(e ecs.Entity, l *component.RenderLayer) {
		if e != bg && l.Index <= layer.Index {
			lowest = false
		}
	})
	if !lowest {
		t.Fatalf("expected backdrop on the lowest layer")
	}
	if sprite, _ := ecs.Get(w, bg, component.SpriteComponent.Kind()); sprite.Width != 1024 || sprite.Height != 768 {
		t.Fatalf("expected full-scene backdrop, got %vx%v", sprite.Width, sprite.Height)
	}
}

func TestLoadLevelToWorldEmbeddedCounts(t *testing.T) {
	for _, name := range levels.Names() {
		t.Run(name, func(t *testing.T) {
			grid, err := levels.LoadLevelFromFS(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			w := ecs.NewWorld()
			stats, err := LoadLevelToWorld(w, grid, prefabs.DefaultMazeSpec())
			if err != nil {
				t.Fatalf("compile %s: %v", name, err)
			}
			if stats.Walls != grid.Count(levels.CellWall) ||
				stats.Hazards != grid.Count(levels.CellHazard) ||
				stats.Pickups != grid.Count(levels.CellPickup) ||
				stats.Goals != grid.Count(levels.CellGoal) {
				t.Fatalf("stats %+v do not match grid", stats)
			}
			if n := ecs.Count(w, component.BodyComponent.Kind()); n != stats.Total() {
				t.Fatalf("expected %d bodies, got %d", stats.Total(), n)
			}
		})
	}
}

func TestNewAvatar(t *testing.T) {
	w := ecs.NewWorld()
	spec := prefabs.DefaultMazeSpec()
	e, err := NewAvatar(w, spec)
	if err != nil {
		t.Fatalf("new avatar: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 96 || tr.Y != 672 {
		t.Fatalf("expected avatar at (96,672), got %+v", tr)
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || body.Tag != component.TagAvatar {
		t.Fatalf("expected avatar tag, got %+v", body)
	}
	layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if layer.CollidesWith != component.CategoryWall {
		t.Fatalf("avatar should collide only with walls: %+v", *layer)
	}
	if layer.NotifiesOn != component.CategoryHazard|component.CategoryPickup|component.CategoryGoal {
		t.Fatalf("avatar notify mask %b", layer.NotifiesOn)
	}
	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if pb.Static || !pb.FixedRotation || pb.LinearDamping != 0.5 {
		t.Fatalf("unexpected avatar body %+v", *pb)
	}
}

func TestNewSessionIsSingleton(t *testing.T) {
	w := ecs.NewWorld()
	a, err := NewSession(w)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	b, err := NewSession(w)
	if err != nil {
		t.Fatalf("new session again: %v", err)
	}
	if a != b {
		t.Fatalf("expected the same session entity")
	}
	state, _ := ecs.Get(w, a, component.GameStateComponent.Kind())
	if state.Score != 0 || state.Over() {
		t.Fatalf("unexpected initial state %+v", *state)
	}
}
