package core

import "github.com/vovakirdan/tui-arcade-tiles/internal/board"

// Snapshot is a self-contained copy of a game's state.
// Every engine action returns a fresh one; mutating it never touches the engine.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Grid    [][]board.Cell
	Players Players
	Phase   Phase
	Winner  Role
	Current Role   // whose turn it is (duel); RoleNone in race
	Elapsed uint64 // race timer ticks
	// Countdown is the number of ticks left before play starts (race).
	Countdown int
	CountA  int    // chickens on the board
	CountB  int    // bananas on the board
	FoundA  int    // chickens revealed
	FoundB  int    // bananas revealed
}

// Cell returns the cell at (row, col), or the zero Cell when out of bounds.
func (s Snapshot) Cell(row, col int) board.Cell {
	if row < 0 || row >= len(s.Grid) || col < 0 || col >= len(s.Grid[row]) {
		return board.Cell{}
	}
	return s.Grid[row][col]
}

// TargetCount returns the number of tiles the role must reveal to win.
func (s Snapshot) TargetCount(r Role) int {
	switch r {
	case RoleA:
		return s.CountA
	case RoleB:
		return s.CountB
	default:
		return 0
	}
}

// WinnerPlayer returns the winning record and whether there is one.
func (s Snapshot) WinnerPlayer() (Player, bool) {
	if s.Winner == RoleNone {
		return Player{}, false
	}
	return s.Players.Get(s.Winner), true
}

// SnapshotOf builds the shared part of a snapshot from a live grid.
func SnapshotOf(g *board.Grid) Snapshot {
	if g == nil {
		return Snapshot{}
	}
	return Snapshot{
		Size:   g.Size(),
		Grid:   g.Cells(),
		CountA: g.Count(board.TargetA),
		CountB: g.Count(board.TargetB),
		FoundA: g.CountRevealed(board.TargetA),
		FoundB: g.CountRevealed(board.TargetB),
	}
}
