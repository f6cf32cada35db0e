// Package save reads and writes the on-disk game files: the JSON
// snapshot used by save/load and the plain-text high score.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/blockfall/internal/game"
)

// WriteGame serializes the snapshot to path as JSON. The write goes
// through a temp file in the same directory followed by a rename, so
// an interrupted save never leaves a truncated file behind.
func WriteGame(path string, sn game.Snapshot) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	data, err := json.Marshal(sn)
	if err != nil {
		return fmt.Errorf("save: cannot encode game state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save: cannot create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save: cannot write game state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: cannot replace %s: %w", path, err)
	}
	return nil
}

// ReadGame loads and validates a snapshot from path. The snapshot is
// checked before it is returned; a corrupt or inconsistent file is an
// error and must not be applied to a running session.
func ReadGame(path string) (game.Snapshot, error) {
	path, err := expandHome(path)
	if err != nil {
		return game.Snapshot{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("save: cannot read %s: %w", path, err)
	}

	var sn game.Snapshot
	if err := json.Unmarshal(data, &sn); err != nil {
		return game.Snapshot{}, fmt.Errorf("save: cannot decode %s: %w", path, err)
	}
	if err := sn.Validate(); err != nil {
		return game.Snapshot{}, fmt.Errorf("save: %s: %w", path, err)
	}
	return sn, nil
}

// ReadHighScore returns the persisted high score. A missing, unreadable
// or unparseable file reads as zero; the high score is a convenience
// record, never a reason to refuse to start.
func ReadHighScore(path string) int {
	path, err := expandHome(path)
	if err != nil {
		return 0
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// WriteHighScore persists the high score as decimal text.
func WriteHighScore(path string, score int) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("save: cannot write high score: %w", err)
	}
	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("save: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
