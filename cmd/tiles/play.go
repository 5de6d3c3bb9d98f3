package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
	"github.com/vovakirdan/tui-arcade-tiles/internal/multiplayer"
	"github.com/vovakirdan/tui-arcade-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-arcade-tiles/internal/registry"
)

var flagBot bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a variant",
	Long: `Start playing the specified variant on one keyboard.

Controls:
  W/A/S/D, Space, 1  - chicken player: move, reveal, ready
  Arrows, Enter, 2   - banana player: move, reveal, ready
  N                  - deal a board (race)
  R                  - restart
  ?                  - show all keys
  Q/Ctrl+C           - quit

Examples:
  tiles play duel
  tiles play race --bot
  tiles play duel --difficulty hard
  tiles play race --config ./my-race.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBot, "bot", false, "Let a bot play the banana seat")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tiles list' to see available games)", gameID)
	}

	mode := multiplayer.MatchModeLocal
	if flagBot {
		mode = multiplayer.MatchModeVsBot
	}
	return playGame(gameID, mode, runtimeConfig(terminalSize()))
}

// playGame builds, resets and runs one game in the TUI.
func playGame(gameID string, mode multiplayer.MatchMode, cfg core.RuntimeConfig) error {
	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	var bot *multiplayer.Bot
	if mode == multiplayer.MatchModeVsBot {
		bot = multiplayer.NewBot(core.RoleB, cfg.Seed+1)
	}
	logger.Info("starting game", "game", gameID, "mode", mode, "seed", cfg.Seed)
	return tui.Run(game, cfg, bot, logger)
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
