package duel

import (
	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

// Reveal uncovers (row, col) for the current player. It is a no-op outside
// Playing, out of bounds, or on an already revealed tile; the second result
// reports whether anything happened.
func (g *Game) Reveal(row, col int) (core.Snapshot, bool) {
	if g.phase != core.PhasePlaying || g.grid == nil {
		return g.Snapshot(), false
	}
	cell, ok := g.grid.Reveal(row, col)
	if !ok {
		return g.Snapshot(), false
	}

	actor := g.players.Ref(g.current)
	switch core.Owner(cell.Kind) {
	case g.current:
		actor.Score++
		if actor.Score >= g.grid.Count(cell.Kind) {
			g.finish(g.current)
		}
	case g.current.Other():
		actor.Lost = true
		actor.Mistakes++
		g.finish(g.current.Other())
	}

	if g.phase == core.PhasePlaying {
		g.current = g.current.Other()
	}
	return g.Snapshot(), true
}

func (g *Game) finish(winner core.Role) {
	if !g.phase.CanAdvanceTo(core.PhaseFinished) {
		return
	}
	g.winner = winner
	g.phase = core.PhaseFinished
}
