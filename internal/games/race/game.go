// Package race implements the simultaneous Chicken-Banana variant.
// Both players ready up, wait out a short countdown, then reveal tiles
// with no turn order. The first to uncover all of their own tiles wins;
// uncovering one of the opponent's loses.
package race

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-arcade-tiles/internal/board"
	"github.com/vovakirdan/tui-arcade-tiles/internal/config"
	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
	"github.com/vovakirdan/tui-arcade-tiles/internal/registry"
)

// ID is the registry identifier of this variant.
const ID = "race"

// Game holds the state of one race.
type Game struct {
	cfg     config.RaceConfig
	pinned  bool
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	grid    *board.Grid
	players core.Players
	phase   core.Phase
	winner  core.Role
	timer   Timer

	countdownTicks int // countdown length, derived from the tick interval
	countdown      int // ticks left while CountdownReady
	cursors        [2]core.Coord
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the board preset. An empty name keeps the
// config board; unknown names are rejected.
func SetDifficultyPreset(preset string) error {
	p, ok := config.ParseDifficulty(preset)
	if !ok {
		return fmt.Errorf("%s: unknown difficulty %q (want easy, normal or hard)", ID, preset)
	}
	difficultyPreset = p
	return nil
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// New creates a race that loads its configuration on Reset.
func New() *Game {
	return &Game{
		cfg:   config.DefaultRaceConfig(),
		phase: core.PhaseSetup,
	}
}

// NewGame creates a race with a fixed configuration, in Setup.
func NewGame(cfg config.RaceConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		pinned:  true,
		runtime: core.DefaultConfig(),
	}
	g.rng = rand.New(rand.NewSource(core.ResolveSeed(g.runtime.Seed)))
	g.countdownTicks = countdownTicks(cfg.Timing.CountdownMS, g.runtime.TickInterval())
	g.Restart()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chicken Banana Race"
}

// Reset loads the configuration, seeds the RNG and returns to Setup.
// The first board is dealt by Start.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if !g.pinned {
		cfg, err := config.LoadRace(configPath)
		if err != nil {
			return err
		}
		config.ApplyRacePreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(core.ResolveSeed(runtime.Seed)))
	g.tick = 0
	g.countdownTicks = countdownTicks(g.cfg.Timing.CountdownMS, runtime.TickInterval())
	g.Restart()
	return nil
}

func countdownTicks(ms int, interval time.Duration) int {
	d := time.Duration(ms) * time.Millisecond
	n := int(d / interval)
	if d%interval != 0 {
		n++
	}
	return n
}

// Restart abandons the current game, including a pending countdown,
// and returns to Setup with fresh player records.
func (g *Game) Restart() core.Snapshot {
	g.grid = nil
	g.players = core.NewPlayers(g.cfg.Players.A, g.cfg.Players.B)
	g.phase = core.PhaseSetup
	g.winner = core.RoleNone
	g.timer.Reset()
	g.countdown = 0
	return g.Snapshot()
}

// Start deals a board and opens the ready check. Only valid in Setup.
func (g *Game) Start() (core.Snapshot, bool) {
	if g.phase != core.PhaseSetup {
		return g.Snapshot(), false
	}
	grid, err := board.Generate(g.cfg.Board.Size, g.cfg.Board.Chickens, g.cfg.Board.Bananas, g.rng)
	if err != nil {
		// Unreachable: the config was validated before the game was built.
		return g.Snapshot(), false
	}
	g.open(grid)
	return g.Snapshot(), true
}

// StartWithGrid opens the ready check on a prepared grid.
func (g *Game) StartWithGrid(grid *board.Grid) core.Snapshot {
	g.Restart()
	g.open(grid)
	return g.Snapshot()
}

func (g *Game) open(grid *board.Grid) {
	if !g.phase.CanAdvanceTo(core.PhaseWaiting) {
		return
	}
	g.grid = grid
	g.phase = core.PhaseWaiting
	mid := grid.Size() / 2
	g.cursors = [2]core.Coord{{Row: mid, Col: mid}, {Row: mid, Col: mid}}
}

// Apply processes one player's input without advancing time. Reveals are
// attributed to role, so a wrong-target click by that role is a loss.
// RoleNone reveals without attribution.
func (g *Game) Apply(role core.Role, in core.InputFrame) (core.Snapshot, bool) {
	changed := false
	if in.Has(core.ActionRestart) {
		g.Restart()
		changed = true
	}
	if in.Has(core.ActionStart) {
		if _, ok := g.Start(); ok {
			changed = true
		}
	}
	if in.Has(core.ActionReady) && role != core.RoleNone {
		if _, ok := g.ToggleReady(role); ok {
			changed = true
		}
	}
	if g.grid == nil {
		return g.Snapshot(), changed
	}

	cur := g.cursor(role)
	if cur != nil {
		if moved := core.MoveCursor(*cur, in, g.grid.Size()); moved != *cur {
			*cur = moved
			changed = true
		}
	}

	if in.Has(core.ActionReveal) {
		var at core.Coord
		switch {
		case in.Target != nil:
			at = *in.Target
		case cur != nil:
			at = *cur
		default:
			return g.Snapshot(), changed
		}
		if _, ok := g.RevealAs(at.Row, at.Col, role); ok {
			changed = true
		}
	}
	return g.Snapshot(), changed
}

// Step applies A's input, then B's, then advances one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++
	changed := false
	for _, r := range core.Roles {
		if _, ok := g.Apply(r, in.Role(r)); ok {
			changed = true
		}
	}
	before := g.phase
	prevCountdown := g.countdown
	prevElapsed := g.timer.Elapsed()
	g.Tick()
	if g.phase != before || g.countdown != prevCountdown || g.timer.Elapsed() != prevElapsed {
		changed = true
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// State returns the coarse game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Winner:   g.winner,
		GameOver: g.phase == core.PhaseFinished,
	}
}

// Cursor returns the cursor of a role.
func (g *Game) Cursor(role core.Role) core.Coord {
	if c := g.cursor(role); c != nil {
		return *c
	}
	return core.Coord{}
}

func (g *Game) cursor(role core.Role) *core.Coord {
	switch role {
	case core.RoleA:
		return &g.cursors[0]
	case core.RoleB:
		return &g.cursors[1]
	default:
		return nil
	}
}

// Elapsed returns the race time so far.
func (g *Game) Elapsed() time.Duration {
	return g.timer.Seconds(g.runtime.TickInterval())
}
