package config

// Board presets per variant. Harder presets pack more targets per tile.
var (
	duelPresets = map[DifficultyPreset]BoardConfig{
		DifficultyEasy:   {Size: 6, Chickens: 5, Bananas: 5},
		DifficultyNormal: {Size: 8, Chickens: 10, Bananas: 10},
		DifficultyHard:   {Size: 10, Chickens: 20, Bananas: 20},
	}
	racePresets = map[DifficultyPreset]BoardConfig{
		DifficultyEasy:   {Size: 5, Chickens: 5, Bananas: 5},
		DifficultyNormal: {Size: 6, Chickens: 8, Bananas: 8},
		DifficultyHard:   {Size: 8, Chickens: 16, Bananas: 16},
	}
)

// ApplyDuelPreset replaces the board with the preset's. DifficultyDefault
// leaves the config untouched.
func ApplyDuelPreset(cfg *DuelConfig, preset DifficultyPreset) {
	if b, ok := duelPresets[preset]; ok {
		cfg.Board = b
	}
}

// ApplyRacePreset replaces the board with the preset's. DifficultyDefault
// leaves the config untouched.
func ApplyRacePreset(cfg *RaceConfig, preset DifficultyPreset) {
	if b, ok := racePresets[preset]; ok {
		cfg.Board = b
	}
}

