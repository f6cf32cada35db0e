package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left", "right", "up", "down", "esc", "ctrl+c", "ctrl+s", "ctrl+l":
		// Special keys map through their type constants
		types := map[string]tea.KeyType{
			"left":   tea.KeyLeft,
			"right":  tea.KeyRight,
			"up":     tea.KeyUp,
			"down":   tea.KeyDown,
			"esc":    tea.KeyEsc,
			"ctrl+c": tea.KeyCtrlC,
			"ctrl+s": tea.KeyCtrlS,
			"ctrl+l": tea.KeyCtrlL,
		}
		return tea.KeyMsg{Type: types[s]}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"left", ActionMoveLeft},
		{"a", ActionMoveLeft},
		{"right", ActionMoveRight},
		{"d", ActionMoveRight},
		{"up", ActionRotate},
		{"w", ActionRotate},
		{"down", ActionSoftDrop},
		{"s", ActionSoftDrop},
		{" ", ActionHardDrop},
		{"p", ActionPauseToggle},
		{"esc", ActionPauseToggle},
		{"ctrl+s", ActionSave},
		{"ctrl+l", ActionLoad},
		{"r", ActionRestart},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"x", ActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestActionIntent(t *testing.T) {
	tests := []struct {
		action Action
		want   game.Intent
		ok     bool
	}{
		{ActionMoveLeft, game.IntentMoveLeft, true},
		{ActionMoveRight, game.IntentMoveRight, true},
		{ActionRotate, game.IntentRotate, true},
		{ActionSoftDrop, game.IntentSoftDrop, true},
		{ActionHardDrop, game.IntentHardDrop, true},
		{ActionPauseToggle, game.IntentPauseToggle, true},
		{ActionSave, 0, false},
		{ActionLoad, 0, false},
		{ActionRestart, 0, false},
		{ActionQuit, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		intent, ok := tt.action.Intent()
		if ok != tt.ok {
			t.Errorf("Action(%v).Intent() ok = %v, want %v", tt.action, ok, tt.ok)
			continue
		}
		if ok && intent != tt.want {
			t.Errorf("Action(%v).Intent() = %v, want %v", tt.action, intent, tt.want)
		}
	}
}
