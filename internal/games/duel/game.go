// Package duel implements the turn-based Chicken-Banana variant.
// Players alternate single reveals. Uncovering all of your own tiles wins;
// uncovering one of your opponent's loses on the spot.
package duel

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-arcade-tiles/internal/board"
	"github.com/vovakirdan/tui-arcade-tiles/internal/config"
	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
	"github.com/vovakirdan/tui-arcade-tiles/internal/registry"
)

// ID is the registry identifier of this variant.
const ID = "duel"

// Game holds the state of one duel.
type Game struct {
	cfg     config.DuelConfig
	pinned  bool // cfg was supplied by the caller; skip loading on Reset
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	grid    *board.Grid
	players core.Players
	phase   core.Phase
	winner  core.Role
	current core.Role
	cursor  core.Coord
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

// New creates a duel that loads its configuration on Reset.
func New() *Game {
	return &Game{
		cfg:   config.DefaultDuelConfig(),
		phase: core.PhaseSetup,
	}
}

// NewGame creates a duel with a fixed configuration. The game starts in
// Setup; call Reset to deal the first board.
func NewGame(cfg config.DuelConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		pinned:  true,
		phase:   core.PhaseSetup,
		players: core.NewPlayers(cfg.Players.A, cfg.Players.B),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chicken Banana Duel"
}

// Reset loads the configuration, seeds the RNG and deals a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if !g.pinned {
		cfg, err := config.LoadDuel(configPath)
		if err != nil {
			return err
		}
		config.ApplyDuelPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(core.ResolveSeed(runtime.Seed)))
	g.tick = 0
	return g.deal()
}

// ResetWithGrid starts a game on a prepared grid instead of a random one.
func (g *Game) ResetWithGrid(grid *board.Grid) {
	board.Annotate(grid)
	g.start(grid)
}

// Restart deals a new board from the running RNG. On error the current
// game is left as it was.
func (g *Game) Restart() (core.Snapshot, error) {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(core.ResolveSeed(g.runtime.Seed)))
	}
	if err := g.deal(); err != nil {
		return g.Snapshot(), err
	}
	return g.Snapshot(), nil
}

func (g *Game) deal() error {
	grid, err := board.Generate(g.cfg.Board.Size, g.cfg.Board.Chickens, g.cfg.Board.Bananas, g.rng)
	if err != nil {
		return err
	}
	board.Annotate(grid)
	g.start(grid)
	return nil
}

func (g *Game) start(grid *board.Grid) {
	g.grid = grid
	g.players = core.NewPlayers(g.cfg.Players.A, g.cfg.Players.B)
	g.phase = core.PhasePlaying
	g.winner = core.RoleNone
	g.current = core.RoleA
	mid := grid.Size() / 2
	g.cursor = core.Coord{Row: mid, Col: mid}
}

// Apply processes one player's input. A role other than RoleNone may only
// reveal on its own turn; RoleNone acts for whoever is current.
func (g *Game) Apply(role core.Role, in core.InputFrame) (core.Snapshot, bool) {
	if in.Has(core.ActionRestart) {
		snap, err := g.Restart()
		return snap, err == nil
	}
	if g.grid == nil {
		return g.Snapshot(), false
	}

	changed := false
	if moved := core.MoveCursor(g.cursor, in, g.grid.Size()); moved != g.cursor {
		g.cursor = moved
		changed = true
	}

	if in.Has(core.ActionReveal) && (role == core.RoleNone || role == g.current) {
		at := g.cursor
		if in.Target != nil {
			at = *in.Target
		}
		if _, ok := g.Reveal(at.Row, at.Col); ok {
			changed = true
		}
	}
	return g.Snapshot(), changed
}

// Step applies the merged input of both seats to the current player and
// advances one tick. Both keyboards drive the same cursor in hot-seat play.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	merged := core.NewInputFrame()
	for _, r := range core.Roles {
		f := in.Role(r)
		for a, on := range f.Actions {
			if on {
				merged.Set(a)
			}
		}
		if f.Target != nil {
			merged.Target = f.Target
		}
	}
	_, changed := g.Apply(core.RoleNone, merged)
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

// Cursor returns the shared cursor position.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// ShowAdjacency reports whether revealed empty tiles display neighbor counts.
func (g *Game) ShowAdjacency() bool {
	return g.cfg.ShowAdjacency
}
