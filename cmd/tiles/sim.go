package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
	"github.com/vovakirdan/tui-arcade-tiles/internal/multiplayer"
	"github.com/vovakirdan/tui-arcade-tiles/internal/registry"
)

var flagGames int

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run bot-vs-bot matches through the event loop",
	Long: `Run headless matches where two random bots play each other.
Each match runs in the same event loop a networked frontend would use;
progress is logged to stderr and a summary is printed at the end.

Examples:
  tiles sim duel
  tiles sim race --games 50 --fps 100
  tiles sim duel --seed 42 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 1, "Number of matches to run")
}

// simSummary tallies results across matches.
type simSummary struct {
	wins      map[core.Role]int
	mistakes  int
	ticks     uint64
	cancelled int
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tiles list' to see available games)", gameID)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg := runtimeConfig(80, 24)
	sum := simSummary{wins: make(map[core.Role]int)}
	for i := 0; i < flagGames; i++ {
		res, lost, err := simulate(gameID, cfg, logger)
		if err != nil {
			return err
		}
		cfg.Seed++
		if res.Reason != multiplayer.MatchEndReasonCompleted {
			sum.cancelled++
			continue
		}
		sum.wins[res.Winner]++
		sum.ticks += res.Ticks
		if lost {
			sum.mistakes++
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "game\t%s\n", gameID)
	fmt.Fprintf(w, "matches\t%d\n", flagGames)
	fmt.Fprintf(w, "chicken wins\t%d\n", sum.wins[core.RoleA])
	fmt.Fprintf(w, "banana wins\t%d\n", sum.wins[core.RoleB])
	fmt.Fprintf(w, "decided by a misclick\t%d\n", sum.mistakes)
	if done := flagGames - sum.cancelled; done > 0 {
		fmt.Fprintf(w, "avg ticks\t%d\n", sum.ticks/uint64(done))
	}
	return w.Flush()
}

// simulate plays one bot match and reports whether the loser misclicked.
func simulate(gameID string, cfg core.RuntimeConfig, logger *log.Logger) (multiplayer.MatchResult, bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return multiplayer.MatchResult{}, false, err
	}
	if err := game.Reset(cfg); err != nil {
		return multiplayer.MatchResult{}, false, err
	}

	m := multiplayer.NewMatch(game, multiplayer.MatchModeBots, cfg.TickRate, logger)
	for i, role := range core.Roles {
		bot := multiplayer.NewBot(role, cfg.Seed+int64(i)+1)
		m.Seat(role, bot.Session())
		go bot.Play(m)
	}

	var res multiplayer.MatchResult
	m.Run(func(r multiplayer.MatchResult) { res = r })

	// Run has returned, so the game is no longer touched by the loop.
	snap := game.Snapshot()
	lost := snap.Players.A.Lost || snap.Players.B.Lost
	return res, lost, nil
}
