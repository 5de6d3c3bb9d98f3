package race

import (
	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

// ToggleReady flips a player's ready flag while Waiting. When both are
// ready the countdown begins.
func (g *Game) ToggleReady(role core.Role) (core.Snapshot, bool) {
	p := g.players.Ref(role)
	if g.phase != core.PhaseWaiting || p == nil {
		return g.Snapshot(), false
	}
	p.Ready = !p.Ready
	if g.players.AllReady() && g.phase.CanAdvanceTo(core.PhaseCountdownReady) {
		g.phase = core.PhaseCountdownReady
		g.countdown = g.countdownTicks
		if g.countdown <= 0 {
			g.play()
		}
	}
	return g.Snapshot(), true
}

// Tick advances the countdown or the race timer by one tick and returns
// the elapsed race ticks.
func (g *Game) Tick() uint64 {
	switch g.phase {
	case core.PhaseCountdownReady:
		g.countdown--
		if g.countdown <= 0 {
			g.play()
		}
	case core.PhasePlaying:
		g.timer.Tick()
	}
	return g.timer.Elapsed()
}

func (g *Game) play() {
	if !g.phase.CanAdvanceTo(core.PhasePlaying) {
		return
	}
	g.countdown = 0
	g.phase = core.PhasePlaying
	g.timer.Start()
}

// Reveal uncovers (row, col) and credits the tile to whoever owns its kind.
// No turn order applies.
func (g *Game) Reveal(row, col int) (core.Snapshot, bool) {
	return g.RevealAs(row, col, core.RoleNone)
}

// RevealAs uncovers (row, col) on behalf of actingRole. A tile of the
// opponent's kind is still credited to its owner, but the acting player
// loses. RoleNone behaves like Reveal.
func (g *Game) RevealAs(row, col int, actingRole core.Role) (core.Snapshot, bool) {
	if g.phase != core.PhasePlaying || g.grid == nil {
		return g.Snapshot(), false
	}
	cell, ok := g.grid.Reveal(row, col)
	if !ok {
		return g.Snapshot(), false
	}

	owner := core.Owner(cell.Kind)
	if owner == core.RoleNone {
		return g.Snapshot(), true
	}
	p := g.players.Ref(owner)
	p.Score++

	if actingRole != core.RoleNone && owner == actingRole.Other() {
		actor := g.players.Ref(actingRole)
		actor.Lost = true
		actor.Mistakes++
		g.finish(owner)
		return g.Snapshot(), true
	}
	if p.Score >= g.grid.Count(cell.Kind) {
		g.finish(owner)
	}
	return g.Snapshot(), true
}

func (g *Game) finish(winner core.Role) {
	if !g.phase.CanAdvanceTo(core.PhaseFinished) {
		return
	}
	g.winner = winner
	g.phase = core.PhaseFinished
	g.timer.Stop()
}
