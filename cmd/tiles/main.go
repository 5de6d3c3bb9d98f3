// tiles is a terminal Chicken-Banana game: two players hunt their own
// hidden tiles on a shared board, turn by turn or in a race.
//
// Usage:
//
//	tiles list              - List available variants
//	tiles play <game>       - Play a variant (duel or race)
//	tiles menu              - Pick a variant interactively
//	tiles sim <game>        - Run bot-vs-bot matches headlessly
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 10, i.e. 100ms per tick)
//	--seed <value>        - RNG seed for reproducible boards
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Board preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file (interactive commands)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arcade-tiles/internal/games/duel"
	"github.com/vovakirdan/tui-arcade-tiles/internal/games/race"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Chicken Banana - find your hidden tiles before your opponent does",
	Long: `Chicken Banana is a two-player hidden tile game for the terminal.

The chicken player hunts chickens, the banana player hunts bananas.
Uncover all of yours to win. Uncover one of your opponent's and you lose.

Variants:
  duel  - players take turns; revealed empty tiles show neighbor counts
  race  - both players ready up, then reveal as fast as they can

Examples:
  tiles list
  tiles play duel
  tiles play race --bot
  tiles sim race --games 20 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		duel.SetConfigPath(flagConfig)
		race.SetConfigPath(flagConfig)
		if err := duel.SetDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
		return race.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Board preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}
