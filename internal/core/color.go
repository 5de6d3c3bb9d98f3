package core

import "github.com/vovakirdan/tui-arcade-tiles/internal/board"

// Color represents a foreground color for a screen cell.
// The TUI maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// RoleColor returns the accent color used for a seat.
func RoleColor(r Role) Color {
	switch r {
	case RoleA:
		return ColorOrange
	case RoleB:
		return ColorYellow
	default:
		return ColorWhite
	}
}

// AdjacencyColor returns the color for an adjacency digit.
func AdjacencyColor(n int) Color {
	switch {
	case n <= 0:
		return ColorGray
	case n == 1:
		return ColorBlue
	case n == 2:
		return ColorGreen
	case n == 3:
		return ColorRed
	default:
		return ColorMagenta
	}
}

// CellGlyph returns the rune and color used to draw a board cell.
// Hidden cells render as '#'; showAdjacency controls whether revealed
// empty cells show their neighbor count.
func CellGlyph(c board.Cell, showAdjacency bool) (rune, Color) {
	if !c.Revealed {
		return '#', ColorGray
	}
	switch c.Kind {
	case board.TargetA:
		return 'C', RoleColor(RoleA)
	case board.TargetB:
		return 'B', RoleColor(RoleB)
	}
	if showAdjacency && c.Adjacency > 0 {
		return rune('0' + c.Adjacency), AdjacencyColor(c.Adjacency)
	}
	return '.', ColorGray
}
