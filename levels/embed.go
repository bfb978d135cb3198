package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

var (
	ErrResourceNotFound = errors.New("levels: resource not found")
	ErrMalformedLevel   = errors.New("levels: malformed level")
)

const DefaultLevel = "level1"

// LoadLevelFromFS reads and parses an embedded level. The .txt suffix is
// optional.
func LoadLevelFromFS(name string) (*Grid, error) {
	clean := levelFileName(name)
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, clean)
		}
		return nil, fmt.Errorf("read level %s: %w", clean, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", clean, err)
	}
	return g, nil
}

// LoadLevelFile reads and parses a level from disk.
func LoadLevelFile(p string) (*Grid, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, p)
		}
		return nil, fmt.Errorf("read level %s: %w", p, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", p, err)
	}
	return g, nil
}

// Load resolves a level reference: an existing file path wins, then a copy
// under levels/ on disk, then the embedded level of that name.
func Load(ref string) (*Grid, error) {
	if ref == "" {
		ref = DefaultLevel
	}
	if strings.ContainsAny(ref, `/\`) || strings.HasSuffix(ref, ".txt") {
		if _, err := os.Stat(ref); err == nil {
			return LoadLevelFile(ref)
		}
	}
	name := levelFileName(path.Base(filepath.ToSlash(ref)))
	if disk := filepath.Join("levels", name); fileExists(disk) {
		return LoadLevelFile(disk)
	}
	return LoadLevelFromFS(name)
}

// Names lists the embedded levels without their suffix.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func levelFileName(name string) string {
	if strings.HasSuffix(name, ".txt") {
		return name
	}
	return name + ".txt"
}
