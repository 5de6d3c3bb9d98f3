package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arcade-tiles/internal/board"
)

// LoadDuel loads the turn-based configuration.
// Search order: customPath -> ~/.arcade/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
func LoadDuel(customPath string) (DuelConfig, error) {
	cfg := DefaultDuelConfig()
	if err := load("duel.yaml", customPath, defaultDuelYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadRace loads the race configuration.
// Search order: customPath -> ~/.arcade/configs/race.yaml -> ./configs/race.yaml -> embedded default
func LoadRace(customPath string) (RaceConfig, error) {
	cfg := DefaultRaceConfig()
	if err := load("race.yaml", customPath, defaultRaceYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load decodes the first config found into out, which holds hardcoded
// defaults on entry. Fields missing from the file keep those defaults.
// Only a broken custom path is an error; other sources fall through.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Embedded YAML; on failure out still holds the hardcoded defaults.
	_ = yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports whether the board can be dealt.
func (b BoardConfig) Validate() error {
	if err := board.Validate(b.Size, b.Chickens, b.Bananas); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate checks the duel configuration.
func (c DuelConfig) Validate() error {
	return c.Board.Validate()
}

// Validate checks the race configuration.
func (c RaceConfig) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.Timing.CountdownMS < 0 {
		return fmt.Errorf("config: countdown_ms %d is negative: %w",
			c.Timing.CountdownMS, board.ErrInvalidConfiguration)
	}
	return nil
}
