package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
board:
  columns: 12
  lines: 24
gravity:
  initial_ms: 800
  step_ms: 50
  min_ms: 100
  locks_per_speed_up: 5
paths:
  save_file: /tmp/game.json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Columns != 12 || cfg.Board.Lines != 24 {
		t.Errorf("board = %dx%d, want 12x24", cfg.Board.Columns, cfg.Board.Lines)
	}
	if cfg.Gravity.InitialMS != 800 {
		t.Errorf("initial_ms = %d, want 800", cfg.Gravity.InitialMS)
	}
	if cfg.Paths.SaveFile != "/tmp/game.json" {
		t.Errorf("save_file = %q", cfg.Paths.SaveFile)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with an explicit missing path should fail")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Loading with no custom path and no user/local config falls back
	// to the embedded YAML, which must agree with Default().
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg.Board != want.Board {
		t.Errorf("board = %+v, want %+v", cfg.Board, want.Board)
	}
	if cfg.Gravity != want.Gravity {
		t.Errorf("gravity = %+v, want %+v", cfg.Gravity, want.Gravity)
	}
}

func TestGravityTuning(t *testing.T) {
	tuning := Default().Gravity.Tuning()

	if tuning.GravityStart != time.Second {
		t.Errorf("GravityStart = %v, want 1s", tuning.GravityStart)
	}
	if tuning.GravityStep != 75*time.Millisecond {
		t.Errorf("GravityStep = %v, want 75ms", tuning.GravityStep)
	}
	if tuning.GravityFloor != 150*time.Millisecond {
		t.Errorf("GravityFloor = %v, want 150ms", tuning.GravityFloor)
	}
	if tuning.LocksPerSpeedUp != 10 {
		t.Errorf("LocksPerSpeedUp = %d, want 10", tuning.LocksPerSpeedUp)
	}
}
