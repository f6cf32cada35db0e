package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/save"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// statusDuration is how long transient messages stay on screen.
const statusDuration = 2 * time.Second

// Model is the Bubble Tea model for a running game.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	cfg     config.Config
	runtime core.RuntimeConfig
	keys    *KeyMapper

	highScore     int
	status        string
	statusExpires time.Time
	scoreSaved    bool // Whether the result has been recorded for the current game over
	quitting      bool
}

// NewModel creates a model with a fresh session.
func NewModel(cfg config.Config, store *storage.Store, runtime core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(
		cfg.Board.Columns,
		cfg.Board.Lines,
		game.NewRandSource(runtime.Seed),
		cfg.Gravity.Tuning(),
	)
	if err != nil {
		return Model{}, err
	}

	return Model{
		session:   session,
		screen:    core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:     store,
		cfg:       cfg,
		runtime:   runtime,
		keys:      NewKeyMapper(),
		highScore: save.ReadHighScore(cfg.Paths.HighScoreFile),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// A resize only changes the drawing surface. The game itself
		// keeps running untouched.
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if intent, ok := action.Intent(); ok {
		m.session.Handle(intent)
		return m, nil
	}

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionSave:
		m.saveGame()
	case ActionLoad:
		m.loadGame()
	case ActionRestart:
		if m.session.GameOver() {
			m.restart()
		}
	}

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Advance(time.Second / time.Duration(m.runtime.TickRate))

	// Record the result once per game over
	if m.session.GameOver() && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	if m.status != "" && time.Now().After(m.statusExpires) {
		m.status = ""
	}

	return m, tickCmd(m.runtime.TickRate)
}

// recordResult writes the finished game to the score history and the
// high-score file. Neither write may take the game down.
func (m *Model) recordResult() {
	score := m.session.Score()
	if score <= 0 {
		return
	}

	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(score)
	}

	if score > m.highScore {
		m.highScore = score
		if err := save.WriteHighScore(m.cfg.Paths.HighScoreFile, score); err != nil {
			m.setStatus("high score not saved: " + err.Error())
		}
	}
}

// saveGame writes the current session to the save file.
func (m *Model) saveGame() {
	if err := save.WriteGame(m.cfg.Paths.SaveFile, m.session.Capture()); err != nil {
		m.setStatus("save failed: " + err.Error())
		return
	}
	m.setStatus("game saved")
}

// loadGame replaces the running session with the saved one. A corrupt
// save file leaves the current game untouched.
func (m *Model) loadGame() {
	sn, err := save.ReadGame(m.cfg.Paths.SaveFile)
	if err != nil {
		m.setStatus("load failed: " + err.Error())
		return
	}

	session, err := game.Restore(sn, game.NewRandSource(time.Now().UnixNano()), m.cfg.Gravity.Tuning())
	if err != nil {
		m.setStatus("load failed: " + err.Error())
		return
	}

	m.session = session
	// A loaded finished game was already recorded when it ended.
	m.scoreSaved = session.GameOver()
	m.setStatus("game loaded")
}

// restart begins a fresh game with a new seed.
func (m *Model) restart() {
	session, err := game.NewSession(
		m.cfg.Board.Columns,
		m.cfg.Board.Lines,
		game.NewRandSource(time.Now().UnixNano()),
		m.cfg.Gravity.Tuning(),
	)
	if err != nil {
		m.setStatus("restart failed: " + err.Error())
		return
	}
	m.session = session
	m.scoreSaved = false
	m.status = ""
}

// setStatus shows a transient message under the board.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusExpires = time.Now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.session, m.highScore, m.status)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given configuration.
func Run(cfg config.Config, store *storage.Store, runtime core.RuntimeConfig) error {
	model, err := NewModel(cfg, store, runtime)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
