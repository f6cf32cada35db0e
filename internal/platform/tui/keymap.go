package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/game"
)

// Action is what a key press means to the platform. Game actions
// translate to engine intents; the rest (save, load, restart, quit)
// are handled by the model itself.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionPauseToggle
	ActionSave
	ActionLoad
	ActionRestart
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "left", "a":
		return ActionMoveLeft
	case "right", "d":
		return ActionMoveRight
	case "up", "w":
		return ActionRotate
	case "down", "s":
		return ActionSoftDrop
	case " ":
		return ActionHardDrop
	case "p", "esc":
		return ActionPauseToggle
	case "ctrl+s":
		return ActionSave
	case "ctrl+l":
		return ActionLoad
	case "r":
		return ActionRestart
	}
	return ActionNone
}

// Intent returns the engine intent for a game action, or false when the
// action is handled by the platform instead.
func (a Action) Intent() (game.Intent, bool) {
	switch a {
	case ActionMoveLeft:
		return game.IntentMoveLeft, true
	case ActionMoveRight:
		return game.IntentMoveRight, true
	case ActionRotate:
		return game.IntentRotate, true
	case ActionSoftDrop:
		return game.IntentSoftDrop, true
	case ActionHardDrop:
		return game.IntentHardDrop, true
	case ActionPauseToggle:
		return game.IntentPauseToggle, true
	}
	return 0, false
}
