package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

// DefaultDuelConfig returns the default turn-based configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Board: BoardConfig{
			Size:     8,
			Chickens: 10,
			Bananas:  10,
		},
		Players: PlayerNames{
			A: "Player 1",
			B: "Player 2",
		},
		ShowAdjacency: true,
	}
}

// DefaultRaceConfig returns the default race configuration.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Board: BoardConfig{
			Size:     6,
			Chickens: 8,
			Bananas:  8,
		},
		Players: PlayerNames{
			A: "Chicken Player",
			B: "Banana Player",
		},
		Timing: RaceTiming{
			CountdownMS: 1000,
		},
	}
}
