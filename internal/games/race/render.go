package race

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

const hudHeight = 3

// Render draws the HUD, the board with both cursors and the phase banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	dst.DrawTextCentered(0, g.Title(), core.ColorWhite)

	if snap.Phase == core.PhaseSetup {
		dst.DrawTextCentered(dst.Height()/2, "Press N to deal a new board", core.ColorWhite)
		return
	}

	rect := core.BoardRect(0, 0, snap.Size)
	boardX := (dst.Width() - rect.W) / 2
	boardY := hudHeight + 1
	if dst.Width() < rect.W || dst.Height() < boardY+rect.H+2 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}

	g.renderHUD(dst, snap, boardX, rect.W)

	var cursors []core.Cursor
	if snap.Phase == core.PhasePlaying {
		for _, r := range core.Roles {
			cursors = append(cursors, core.Cursor{At: g.Cursor(r), Color: core.RoleColor(r)})
		}
	}
	core.DrawBoard(dst, boardX, boardY, snap, false, cursors...)

	g.renderStatus(dst, snap, boardY+rect.H+1)
}

func (g *Game) renderHUD(dst *core.Screen, snap core.Snapshot, boardX, boardW int) {
	for i, r := range core.Roles {
		p := snap.Players.Get(r)
		line := fmt.Sprintf("%s: %d/%d", p.Name, p.Score, snap.TargetCount(r))
		if snap.Phase == core.PhaseWaiting && p.Ready {
			line += " (ready)"
		}
		dst.DrawTextColored(boardX, 1+i, line, core.RoleColor(r))
	}

	clock := FormatElapsed(g.Elapsed())
	dst.DrawTextColored(max(boardX, boardX+boardW-len(clock)), 1, clock, core.ColorCyan)
}

func (g *Game) renderStatus(dst *core.Screen, snap core.Snapshot, y int) {
	switch snap.Phase {
	case core.PhaseWaiting:
		dst.DrawTextCentered(y, "Both players press ready to begin", core.ColorWhite)
	case core.PhaseCountdownReady:
		left := time.Duration(snap.Countdown) * g.runtime.TickInterval()
		dst.DrawTextCentered(y, fmt.Sprintf("%s %s", snap.Phase.Label(), FormatElapsed(left)), core.ColorYellow)
	case core.PhasePlaying:
		dst.DrawTextCentered(y, "Go!", core.ColorGreen)
	case core.PhaseFinished:
		w, _ := snap.WinnerPlayer()
		msg := fmt.Sprintf("%s wins in %s!", w.Name, FormatElapsed(g.Elapsed()))
		if loser := snap.Players.Get(snap.Winner.Other()); !loser.Active() {
			msg = fmt.Sprintf("%s clicked a %s. %s wins!", loser.Name, snap.Winner, w.Name)
		}
		dst.DrawTextCentered(y, msg, core.RoleColor(snap.Winner))
		dst.DrawTextCentered(y+1, "Press R to return to setup", core.ColorGray)
	}
}
