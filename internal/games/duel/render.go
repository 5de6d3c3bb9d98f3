package duel

import (
	"fmt"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

const hudHeight = 3

// Render draws the HUD, the board and the result banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	if snap.Size == 0 {
		dst.DrawTextCentered(dst.Height()/2, "Press R to deal a board", core.ColorWhite)
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
		cursors = append(cursors, core.Cursor{At: g.cursor, Color: core.RoleColor(snap.Current)})
	}
	core.DrawBoard(dst, boardX, boardY, snap, g.cfg.ShowAdjacency, cursors...)

	g.renderStatus(dst, snap, boardY+rect.H+1)
}

func (g *Game) renderHUD(dst *core.Screen, snap core.Snapshot, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title(), core.ColorWhite)

	a := snap.Players.A
	left := fmt.Sprintf("%s: %d/%d", a.Name, a.Score, snap.CountA)
	dst.DrawTextColored(boardX, 1, left, core.RoleColor(core.RoleA))

	b := snap.Players.B
	right := fmt.Sprintf("%s: %d/%d", b.Name, b.Score, snap.CountB)
	dst.DrawTextColored(max(boardX, boardX+boardW-len([]rune(right))), 2, right, core.RoleColor(core.RoleB))
}

func (g *Game) renderStatus(dst *core.Screen, snap core.Snapshot, y int) {
	switch snap.Phase {
	case core.PhasePlaying:
		p := snap.Players.Get(snap.Current)
		msg := fmt.Sprintf("%s's turn: find the %ss", p.Name, p.Role)
		dst.DrawTextCentered(y, msg, core.RoleColor(snap.Current))
	case core.PhaseFinished:
		w, _ := snap.WinnerPlayer()
		msg := fmt.Sprintf("%s wins!", w.Name)
		if loser := snap.Players.Get(snap.Winner.Other()); !loser.Active() {
			msg = fmt.Sprintf("%s found a %s. %s", loser.Name, snap.Winner, msg)
		}
		dst.DrawTextCentered(y, msg, core.RoleColor(snap.Winner))
		dst.DrawTextCentered(y+1, "Press R to play again", core.ColorGray)
	}
}
