package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedLevelsParse(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected embedded levels")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			g, err := LoadLevelFromFS(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if g.Count(CellGoal) == 0 {
				t.Fatalf("level %s has no goal", name)
			}
			// The avatar starts in column 1 of the second line.
			if g.At(1, 1) != CellEmpty {
				t.Fatalf("level %s blocks the start cell", name)
			}
		})
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := LoadLevelFromFS("does-not-exist"); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
	if _, err := LoadLevelFile(filepath.Join(t.TempDir(), "nope.txt")); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound from disk, got %v", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("xxx\nxfx\nxxx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(good)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.At(1, 1) != CellGoal {
		t.Fatalf("expected goal in the middle")
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("xxx\nx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrMalformedLevel) {
		t.Fatalf("expected ErrMalformedLevel, got %v", err)
	}
}

func TestLoadDefaultsToFirstLevel(t *testing.T) {
	g, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want, err := LoadLevelFromFS(DefaultLevel + ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != want.Width || g.Height != want.Height {
		t.Fatalf("default level mismatch")
	}
}
