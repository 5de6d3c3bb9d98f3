// Package config provides YAML-based configuration loading for the tile
// games, with embedded defaults and board size presets.
package config

// BoardConfig describes the board dealt at the start of every game.
type BoardConfig struct {
	Size     int `yaml:"size"`
	Chickens int `yaml:"chickens"` // TargetA tiles
	Bananas  int `yaml:"bananas"`  // TargetB tiles
}

// PlayerNames holds the display names for both seats.
type PlayerNames struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// DuelConfig contains all configuration for the turn-based variant.
type DuelConfig struct {
	Board   BoardConfig `yaml:"board"`
	Players PlayerNames `yaml:"players"`
	// ShowAdjacency draws neighbor counts on revealed empty tiles.
	ShowAdjacency bool `yaml:"show_adjacency"`
}

// RaceConfig contains all configuration for the simultaneous variant.
type RaceConfig struct {
	Board   BoardConfig `yaml:"board"`
	Players PlayerNames `yaml:"players"`
	Timing  RaceTiming  `yaml:"timing"`
}

// RaceTiming defines the countdown between both players readying up and play.
type RaceTiming struct {
	CountdownMS int `yaml:"countdown_ms"`
}

// DifficultyPreset represents a named board preset.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = "" // keep the loaded board
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset.
// Unknown values yield DifficultyDefault and false.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	default:
		return DifficultyDefault, false
	}
}
