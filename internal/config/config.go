// Package config provides YAML-based configuration loading for the
// game rules and the on-disk file locations.
package config

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/game"
)

// Config contains all user-tunable settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Paths   PathsConfig   `yaml:"paths"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Lines   int `yaml:"lines"`
}

// GravityConfig defines the automatic-drop progression.
type GravityConfig struct {
	InitialMS       int `yaml:"initial_ms"`         // Interval between drops at game start
	StepMS          int `yaml:"step_ms"`            // Reduction per speed-up
	MinMS           int `yaml:"min_ms"`             // Interval floor
	LocksPerSpeedUp int `yaml:"locks_per_speed_up"` // Piece locks between speed-ups
}

// PathsConfig defines where the game keeps its files.
type PathsConfig struct {
	SaveFile      string `yaml:"save_file"`
	HighScoreFile string `yaml:"highscore_file"`
	Database      string `yaml:"database"`
}

// Tuning converts the gravity settings into engine parameters.
func (g GravityConfig) Tuning() game.Tuning {
	return game.Tuning{
		GravityStart:    time.Duration(g.InitialMS) * time.Millisecond,
		GravityStep:     time.Duration(g.StepMS) * time.Millisecond,
		GravityFloor:    time.Duration(g.MinMS) * time.Millisecond,
		LocksPerSpeedUp: g.LocksPerSpeedUp,
	}
}
