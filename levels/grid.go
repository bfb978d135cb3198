package levels

import (
	"bytes"
	"fmt"
)

// CellKind is the gameplay meaning of a level cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
	CellHazard
	CellPickup
	CellGoal
)

func (k CellKind) String() string {
	switch k {
	case CellWall:
		return "wall"
	case CellHazard:
		return "hazard"
	case CellPickup:
		return "pickup"
	case CellGoal:
		return "goal"
	default:
		return "empty"
	}
}

// Level file symbols. Any other character, including space, is empty floor.
const (
	SymbolWall   = 'x'
	SymbolHazard = 'v'
	SymbolPickup = 's'
	SymbolGoal   = 'f'
)

var symbolKinds = map[rune]CellKind{
	SymbolWall:   CellWall,
	SymbolHazard: CellHazard,
	SymbolPickup: CellPickup,
	SymbolGoal:   CellGoal,
}

// KindOf maps a cell symbol to its kind. utf8.RuneError, which stands in
// for invalid UTF-8, is empty like any other unknown symbol.
func KindOf(symbol rune) CellKind {
	if k, ok := symbolKinds[symbol]; ok {
		return k
	}
	return CellEmpty
}

// Grid is a parsed level. Rows are in file order, so Rows[0] is the first line
// of the file and renders at the top of the maze.
type Grid struct {
	Rows   [][]rune
	Width  int
	Height int
}

// Parse splits level text into rows of characters. A trailing newline and
// CRLF line endings are accepted. Rows of unequal length, counted in
// characters, are rejected rather than padded.
func Parse(src []byte) (*Grid, error) {
	lines := bytes.Split(src, []byte("\n"))
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLevel)
	}

	g := &Grid{Rows: make([][]rune, len(lines)), Height: len(lines)}
	for i, line := range lines {
		cells := bytes.Runes(bytes.TrimSuffix(line, []byte("\r")))
		if i == 0 {
			g.Width = len(cells)
		}
		if len(cells) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrMalformedLevel, i, len(cells), g.Width)
		}
		g.Rows[i] = cells
	}
	if g.Width == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrMalformedLevel)
	}
	return g, nil
}

// At returns the kind of the cell at file row and column.
func (g *Grid) At(row, col int) CellKind {
	if g == nil || row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return CellEmpty
	}
	return KindOf(g.Rows[row][col])
}

// WorldRow converts a file row to a world row; the last line is world row 0.
func (g *Grid) WorldRow(row int) int {
	return g.Height - 1 - row
}

// Count returns how many cells of kind k the grid holds.
func (g *Grid) Count(k CellKind) int {
	if g == nil {
		return 0
	}
	n := 0
	for r := range g.Rows {
		for c := range g.Rows[r] {
			if KindOf(g.Rows[r][c]) == k {
				n++
			}
		}
	}
	return n
}
