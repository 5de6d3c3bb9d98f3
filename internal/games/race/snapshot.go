package race

import "github.com/vovakirdan/tui-arcade-tiles/internal/core"

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() core.Snapshot {
	s := core.SnapshotOf(g.grid)
	s.Tick = g.tick
	s.Variant = ID
	s.Players = g.players
	s.Phase = g.phase
	s.Winner = g.winner
	s.Current = core.RoleNone
	s.Elapsed = g.timer.Elapsed()
	s.Countdown = g.countdown
	return s
}
