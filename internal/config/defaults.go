package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the default configuration: a classic 10x20 board
// with one-second gravity speeding up by 75ms every 10 locks.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Columns: 10,
			Lines:   20,
		},
		Gravity: GravityConfig{
			InitialMS:       1000,
			StepMS:          75,
			MinMS:           150,
			LocksPerSpeedUp: 10,
		},
		Paths: PathsConfig{
			SaveFile:      "~/.blockfall/game.json",
			HighScoreFile: "~/.blockfall/highscore.txt",
			Database:      "~/.blockfall/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
