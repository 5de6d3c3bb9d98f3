package duel

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arcade-tiles/internal/board"
	"github.com/vovakirdan/tui-arcade-tiles/internal/config"
	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

func newTestGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	cfg := config.DefaultDuelConfig()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	grid, err := board.Parse(rows...)
	if err != nil {
		t.Fatalf("board.Parse() error = %v", err)
	}
	g.ResetWithGrid(grid)
	return g
}

func TestNewGameStartsInSetup(t *testing.T) {
	g, err := NewGame(config.DefaultDuelConfig())
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if g.State().Phase != core.PhaseSetup {
		t.Errorf("phase = %v, want %v", g.State().Phase, core.PhaseSetup)
	}
	if _, ok := g.Reveal(0, 0); ok {
		t.Error("Reveal during Setup should be a no-op")
	}
}

func TestNewGameInvalidConfiguration(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Board = config.BoardConfig{Size: 2, Chickens: 3, Bananas: 3}
	if _, err := NewGame(cfg); !errors.Is(err, board.ErrInvalidConfiguration) {
		t.Errorf("NewGame() error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestResetDealsConfiguredBoard(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = 42
	if err := g.Reset(rt); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	snap := g.Snapshot()
	if snap.Size != cfg.Board.Size {
		t.Errorf("Size = %d, want %d", snap.Size, cfg.Board.Size)
	}
	if snap.CountA != cfg.Board.Chickens || snap.CountB != cfg.Board.Bananas {
		t.Errorf("counts = (%d, %d), want (%d, %d)", snap.CountA, snap.CountB, cfg.Board.Chickens, cfg.Board.Bananas)
	}
	if snap.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want %v", snap.Phase, core.PhasePlaying)
	}
	if snap.Current != core.RoleA {
		t.Errorf("current = %v, want %v", snap.Current, core.RoleA)
	}
	if snap.Players.A.Name != "Player 1" || snap.Players.B.Name != "Player 2" {
		t.Errorf("names = (%q, %q)", snap.Players.A.Name, snap.Players.B.Name)
	}

	other, _ := NewGame(cfg)
	_ = other.Reset(rt)
	if a, b := gridString(snap), gridString(other.Snapshot()); a != b {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}
}

func gridString(s core.Snapshot) string {
	out := make([]byte, 0, s.Size*(s.Size+1))
	for r := 0; r < s.Size; r++ {
		for c := 0; c < s.Size; c++ {
			out = append(out, byte(s.Cell(r, c).Kind.Symbol()))
		}
		out = append(out, '\n')
	}
	return string(out)
}

func TestRevealTwiceIsNoOp(t *testing.T) {
	g := newTestGame(t,
		"A..",
		"...",
		"..B",
	)

	snap, ok := g.Reveal(1, 1)
	if !ok {
		t.Fatal("first Reveal(1, 1) = false, want true")
	}
	if !snap.Cell(1, 1).Revealed {
		t.Error("cell (1, 1) not revealed")
	}
	if snap.Current != core.RoleB {
		t.Errorf("current after empty reveal = %v, want %v", snap.Current, core.RoleB)
	}

	again, ok := g.Reveal(1, 1)
	if ok {
		t.Error("second Reveal(1, 1) = true, want false")
	}
	if again.Current != core.RoleB {
		t.Errorf("current after no-op = %v, want %v", again.Current, core.RoleB)
	}
}

func TestRevealOutOfBoundsIsNoOp(t *testing.T) {
	g := newTestGame(t, "A.", ".B")
	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 2, 0},
		{"col too large", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := g.Reveal(tt.row, tt.col); ok {
				t.Errorf("Reveal(%d, %d) = true, want false", tt.row, tt.col)
			}
		})
	}
	if g.Snapshot().Current != core.RoleA {
		t.Error("out-of-bounds reveals must not flip the turn")
	}
}

func TestCompletionWins(t *testing.T) {
	g := newTestGame(t,
		"AA.",
		"...",
		"..B",
	)

	steps := []struct {
		row, col int
		current  core.Role
	}{
		{0, 0, core.RoleA},
		{1, 1, core.RoleB},
		{0, 1, core.RoleA},
	}
	var snap core.Snapshot
	for _, s := range steps {
		if got := g.Snapshot().Current; got != s.current {
			t.Fatalf("current before Reveal(%d, %d) = %v, want %v", s.row, s.col, got, s.current)
		}
		snap, _ = g.Reveal(s.row, s.col)
	}

	if snap.Winner != core.RoleA {
		t.Errorf("winner = %v, want %v", snap.Winner, core.RoleA)
	}
	if snap.Phase != core.PhaseFinished {
		t.Errorf("phase = %v, want %v", snap.Phase, core.PhaseFinished)
	}
	if snap.Players.A.Score != 2 {
		t.Errorf("A score = %d, want 2", snap.Players.A.Score)
	}
	if snap.Current != core.RoleA {
		t.Errorf("current after finish = %v, want %v (no flip)", snap.Current, core.RoleA)
	}

	if _, ok := g.Reveal(2, 2); ok {
		t.Error("Reveal after Finished should be a no-op")
	}
	if g.Snapshot().Cell(2, 2).Revealed {
		t.Error("cell revealed after Finished")
	}
}

func TestOpponentKindLosesInstantly(t *testing.T) {
	tests := []struct {
		name   string
		moves  [][2]int
		loser  core.Role
		winner core.Role
	}{
		{
			name:   "A reveals a banana first",
			moves:  [][2]int{{2, 2}},
			loser:  core.RoleA,
			winner: core.RoleB,
		},
		{
			name:   "B reveals a chicken",
			moves:  [][2]int{{1, 1}, {0, 0}},
			loser:  core.RoleB,
			winner: core.RoleA,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t,
				"AA.",
				"...",
				"..B",
			)
			var snap core.Snapshot
			for _, m := range tt.moves {
				snap, _ = g.Reveal(m[0], m[1])
			}
			if snap.Winner != tt.winner {
				t.Errorf("winner = %v, want %v", snap.Winner, tt.winner)
			}
			if snap.Phase != core.PhaseFinished {
				t.Errorf("phase = %v, want %v", snap.Phase, core.PhaseFinished)
			}
			loser := snap.Players.Get(tt.loser)
			if !loser.Lost || loser.Mistakes != 1 {
				t.Errorf("loser = %+v, want Lost with 1 mistake", loser)
			}
			if w := snap.Players.Get(tt.winner); w.Score != 0 {
				t.Errorf("winner score = %d, want 0", w.Score)
			}
		})
	}
}

func TestTwoByTwoScenario(t *testing.T) {
	g := newTestGame(t,
		"A.",
		".B",
	)

	snap, ok := g.Reveal(0, 0)
	if !ok {
		t.Fatal("Reveal(0, 0) = false, want true")
	}
	if snap.Players.A.Score != 1 {
		t.Errorf("A score = %d, want 1", snap.Players.A.Score)
	}
	if snap.Winner != core.RoleA || snap.Phase != core.PhaseFinished {
		t.Errorf("winner/phase = %v/%v, want %v/%v", snap.Winner, snap.Phase, core.RoleA, core.PhaseFinished)
	}

	after, ok := g.Reveal(1, 1)
	if ok {
		t.Error("Reveal(1, 1) after finish = true, want false")
	}
	if after.Cell(1, 1).Revealed {
		t.Error("cell (1, 1) revealed after finish")
	}
	if after.Players.B.Lost {
		t.Error("B marked lost after finish")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := newTestGame(t, "A.", ".B")
	snap := g.Snapshot()
	snap.Grid[0][0].Revealed = true
	snap.Players.A.Score = 9

	fresh := g.Snapshot()
	if fresh.Cell(0, 0).Revealed {
		t.Error("mutating a snapshot grid changed the game")
	}
	if fresh.Players.A.Score != 0 {
		t.Error("mutating snapshot players changed the game")
	}
}

func TestAdjacencyAnnotated(t *testing.T) {
	g := newTestGame(t,
		"A..",
		"...",
		"..B",
	)
	snap, _ := g.Reveal(1, 1)
	if got := snap.Cell(1, 1).Adjacency; got != 2 {
		t.Errorf("adjacency(1, 1) = %d, want 2", got)
	}
}

func TestApplyEnforcesTurn(t *testing.T) {
	g := newTestGame(t,
		"A..",
		"...",
		"..B",
	)

	in := core.NewInputFrame()
	in.RevealAt(1, 1)
	if _, ok := g.Apply(core.RoleB, in); ok {
		t.Error("B revealing on A's turn should be ignored")
	}
	snap, ok := g.Apply(core.RoleA, in)
	if !ok || !snap.Cell(1, 1).Revealed {
		t.Error("A revealing on A's turn should be applied")
	}
}

func TestStepMovesCursorAndReveals(t *testing.T) {
	g := newTestGame(t,
		"A..",
		"...",
		"..B",
	)
	if got := g.Cursor(); got != (core.Coord{Row: 1, Col: 1}) {
		t.Fatalf("initial cursor = %v, want (1, 1)", got)
	}

	// Both seats share one cursor in hot-seat play.
	in := core.NewMultiInputFrame()
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	in.SetRole(core.RoleA, left)
	in.SetRole(core.RoleB, up)
	g.Step(in)
	if got := g.Cursor(); got != (core.Coord{Row: 0, Col: 0}) {
		t.Fatalf("cursor = %v, want (0, 0)", got)
	}

	in = core.NewMultiInputFrame()
	reveal := core.NewInputFrame()
	reveal.Set(core.ActionReveal)
	in.SetRole(core.RoleB, reveal)
	res := g.Step(in)
	if !res.Changed {
		t.Error("Step with reveal should report a change")
	}
	if g.Snapshot().Players.A.Score != 1 {
		t.Errorf("A score = %d, want 1", g.Snapshot().Players.A.Score)
	}
}

func TestRestartDealsNewBoard(t *testing.T) {
	g, _ := NewGame(config.DefaultDuelConfig())
	rt := core.DefaultConfig()
	rt.Seed = 7
	if err := g.Reset(rt); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	g.Reveal(0, 0)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	snap, ok := g.Apply(core.RoleNone, in)
	if !ok {
		t.Fatal("restart reported no change")
	}
	if snap.Phase != core.PhasePlaying || snap.Winner != core.RoleNone || snap.Current != core.RoleA {
		t.Errorf("after restart phase/winner/current = %v/%v/%v", snap.Phase, snap.Winner, snap.Current)
	}
	for r := range snap.Grid {
		for c := range snap.Grid[r] {
			if snap.Grid[r][c].Revealed {
				t.Fatalf("cell (%d, %d) revealed after restart", r, c)
			}
		}
	}
}

func TestRenderShowsTurn(t *testing.T) {
	g := newTestGame(t, "A.", ".B")
	scr := core.NewScreen(60, 16)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Player 1's turn") {
		t.Errorf("render missing turn line:\n%s", scr.String())
	}

	g.Reveal(0, 0)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Player 1 wins!") {
		t.Errorf("render missing winner line:\n%s", scr.String())
	}
}

func TestMisclickIsNotFound(t *testing.T) {
	g := newTestGame(t, "AB", "..")

	snap, ok := g.Reveal(0, 1) // A uncovers a banana
	if !ok {
		t.Fatal("reveal reported no change")
	}
	if snap.FoundB != 0 || snap.Players.B.Score != 0 {
		t.Errorf("FoundB/B.Score = %d/%d, want 0/0", snap.FoundB, snap.Players.B.Score)
	}
	if snap.FoundA != 0 {
		t.Errorf("FoundA = %d, want 0", snap.FoundA)
	}
	if snap.Winner != core.RoleB || !snap.Players.A.Lost {
		t.Errorf("winner = %v, A lost = %v", snap.Winner, snap.Players.A.Lost)
	}
}

func TestFoundTracksCorrectPicks(t *testing.T) {
	g := newTestGame(t, "AA", ".B")
	g.Reveal(0, 0) // A finds a chicken
	snap, _ := g.Reveal(1, 1)
	if snap.FoundA != 1 || snap.FoundB != 1 {
		t.Errorf("found = (%d, %d), want (1, 1)", snap.FoundA, snap.FoundB)
	}
}

func TestRestartDealErrorKeepsGame(t *testing.T) {
	g := newTestGame(t, "A.", ".B")
	g.Reveal(0, 1)
	g.cfg.Board = config.BoardConfig{Size: 2, Chickens: 3, Bananas: 3}

	snap, err := g.Restart()
	if !errors.Is(err, board.ErrInvalidConfiguration) {
		t.Fatalf("Restart() error = %v, want ErrInvalidConfiguration", err)
	}
	if !snap.Cell(0, 1).Revealed || snap.Current != core.RoleB {
		t.Error("failed restart should leave the game untouched")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	if _, ok := g.Apply(core.RoleNone, in); ok {
		t.Error("failed restart should report no change")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { _ = SetDifficultyPreset("") })

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"easy", false},
		{"hard", false},
		{"hrad", true},
		{"Hard", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := SetDifficultyPreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetDifficultyPreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestUnknownDifficultyKeepsPreset(t *testing.T) {
	t.Cleanup(func() { _ = SetDifficultyPreset("") })

	if err := SetDifficultyPreset("easy"); err != nil {
		t.Fatal(err)
	}
	_ = SetDifficultyPreset("hrad")
	if difficultyPreset != config.DifficultyEasy {
		t.Errorf("preset = %q, want %q", difficultyPreset, config.DifficultyEasy)
	}
}
