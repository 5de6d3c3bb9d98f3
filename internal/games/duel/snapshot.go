package duel

import "github.com/vovakirdan/tui-arcade-tiles/internal/core"

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() core.Snapshot {
	s := core.SnapshotOf(g.grid)
	s.Tick = g.tick
	s.Variant = ID
	s.Players = g.players
	s.Phase = g.phase
	s.Winner = g.winner
	s.Current = g.current
	// Found counts only correct picks; a misclick reveals an opponent tile
	// without scoring it.
	s.FoundA = g.players.A.Score
	s.FoundB = g.players.B.Score
	return s
}
