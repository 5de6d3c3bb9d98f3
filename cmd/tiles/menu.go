package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arcade-tiles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Examples:
  tiles menu
  tiles menu --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig(terminalSize())
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		if err := playGame(result.GameID, result.Mode, cfg); err != nil {
			return err
		}
		// Deal a different board next time.
		cfg.Seed++
	}
}
