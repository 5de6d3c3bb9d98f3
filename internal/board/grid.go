package board

import (
	"fmt"
	"strings"
)

// Cell is one square of the grid.
// Kind never changes after generation; Revealed flips false->true once.
type Cell struct {
	Kind      Kind
	Revealed  bool
	Adjacency int // non-empty neighbours, set by Annotate for Empty cells
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Grid is a fixed size x size square of cells.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid returns a size x size grid of unrevealed Empty cells.
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns a copy of the cell at (row, col).
// Out-of-bounds coordinates return the zero Cell.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{}
	}
	return g.cells[row][col]
}

// Reveal marks the cell revealed and returns it.
// The second result is false when the cell was out of bounds or already
// revealed, in which case nothing changed.
func (g *Grid) Reveal(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	cell := &g.cells[row][col]
	if cell.Revealed {
		return *cell, false
	}
	cell.Revealed = true
	return *cell, true
}

// Count returns how many cells hold the given kind.
func (g *Grid) Count(kind Kind) int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Kind == kind {
				n++
			}
		}
	}
	return n
}

// CountRevealed returns how many revealed cells hold the given kind.
func (g *Grid) CountRevealed(kind Kind) int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Kind == kind && g.cells[r][c].Revealed {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the cell matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.size)
	for r := range g.cells {
		out[r] = make([]Cell, g.size)
		copy(out[r], g.cells[r])
	}
	return out
}

// Parse builds an unrevealed grid from rows of symbols:
// 'A' is TargetA, 'B' is TargetB and '.' is Empty.
// All rows must have the same length as the number of rows.
func Parse(rows ...string) (*Grid, error) {
	g := NewGrid(len(rows))
	for r, line := range rows {
		if len(line) != len(rows) {
			return nil, fmt.Errorf("board: row %d has %d cells, want %d", r, len(line), len(rows))
		}
		for c, ch := range line {
			switch ch {
			case 'A':
				g.cells[r][c].Kind = TargetA
			case 'B':
				g.cells[r][c].Kind = TargetB
			case '.':
				g.cells[r][c].Kind = Empty
			default:
				return nil, fmt.Errorf("board: unknown symbol %q at %d,%d", ch, r, c)
			}
		}
	}
	return g, nil
}

// String renders the hidden layout, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size*g.size + g.size)
	for r := range g.cells {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := range g.cells[r] {
			sb.WriteRune(g.cells[r][c].Kind.Symbol())
		}
	}
	return sb.String()
}
