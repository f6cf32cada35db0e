package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Intent is a discrete player command consumed by the session. Save,
// load, and quit live outside the engine; the platform handles them.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentRotate
	IntentSoftDrop
	IntentHardDrop
	IntentPauseToggle
)

// Status is the session's state-machine position.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// kickOffsets are the wall-kick column offsets tried in order, relative
// to the pre-rotation column. The ordering is load-bearing behavior:
// the engine kicks right before left, then further right before
// further left.
var kickOffsets = [...]int{0, 1, -1, 2, -2}

// Tuning holds the gravity progression parameters.
type Tuning struct {
	GravityStart    time.Duration // Interval between automatic drops at game start
	GravityStep     time.Duration // Reduction applied on each speed-up
	GravityFloor    time.Duration // Interval never drops below this
	LocksPerSpeedUp int           // Piece locks between speed-ups
}

// DefaultTuning returns the classic progression: one-second gravity,
// 75ms faster every 10 locks, floored at 150ms.
func DefaultTuning() Tuning {
	return Tuning{
		GravityStart:    1000 * time.Millisecond,
		GravityStep:     75 * time.Millisecond,
		GravityFloor:    150 * time.Millisecond,
		LocksPerSpeedUp: 10,
	}
}

// Session is the whole game state as one owned aggregate: board, active
// piece, lookahead, score, gravity, and status flags. All mutation goes
// through Handle and Advance, one operation at a time; there is no
// internal clock and no concurrency.
type Session struct {
	board  *Board
	active ActivePiece
	next   PieceID
	source PieceSource
	tuning Tuning

	score           int
	gravityInterval time.Duration
	sinceGravity    time.Duration
	speedUpCounter  int
	gameOver        bool
	paused          bool
}

// NewSession creates a session with an initial piece and lookahead
// drawn from the source. Non-positive dimensions and a nil source are
// caller errors.
func NewSession(width, height int, source PieceSource, tuning Tuning) (*Session, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("game: board dimensions must be positive, got %dx%d", width, height)
	}
	if source == nil {
		return nil, fmt.Errorf("game: piece source must not be nil")
	}

	s := &Session{
		board:           NewBoard(width, height),
		source:          source,
		tuning:          tuning,
		gravityInterval: tuning.GravityStart,
	}
	s.active = SpawnPiece(source.Next(), width)
	s.next = source.Next()
	return s, nil
}

// Handle processes one intent. Illegal moves are rejected silently and
// leave the state unchanged; they are not errors. While paused only
// pause-toggle is accepted; after game over nothing is.
func (s *Session) Handle(in Intent) {
	if s.gameOver {
		return
	}
	if in == IntentPauseToggle {
		s.paused = !s.paused
		return
	}
	if s.paused {
		return
	}

	switch in {
	case IntentMoveLeft:
		s.tryMove(-1, 0)
	case IntentMoveRight:
		s.tryMove(1, 0)
	case IntentRotate:
		s.rotate()
	case IntentSoftDrop:
		// Down never merely fails: it either moves or locks.
		if !s.tryMove(0, 1) {
			s.lockActive()
		}
		s.sinceGravity = 0
	case IntentHardDrop:
		for s.tryMove(0, 1) {
		}
		s.lockActive()
		s.sinceGravity = 0
	}
}

// Advance accounts for elapsed wall time. When the accumulated time
// reaches the gravity interval the piece drops one row (locking if
// blocked) and the accumulator resets regardless of outcome. At most
// one gravity event fires per call.
func (s *Session) Advance(dt time.Duration) {
	if s.gameOver || s.paused {
		return
	}
	s.sinceGravity += dt
	if s.sinceGravity < s.gravityInterval {
		return
	}
	if !s.tryMove(0, 1) {
		s.lockActive()
	}
	s.sinceGravity = 0
}

// tryMove translates the active piece if the destination is free.
func (s *Session) tryMove(dx, dy int) bool {
	cand := s.active.translated(dx, dy)
	if s.board.Collides(cand.Cells()) {
		return false
	}
	s.active = cand
	return true
}

// rotate advances the active piece to its next orientation, searching
// the wall-kick offsets for the first non-colliding column. If every
// offset collides the rotation is rejected and the piece keeps its
// prior orientation.
func (s *Session) rotate() {
	cand := s.active.rotated()
	for _, off := range kickOffsets {
		cand.X = s.active.X + off
		if !s.board.Collides(cand.Cells()) {
			s.active = cand
			return
		}
	}
}

// lockActive writes the piece into the board, clears rows, scores,
// and spawns the lookahead piece.
func (s *Session) lockActive() {
	s.board.Lock(s.active.Cells(), s.active.Def().Color)
	s.score += ScoreForRows(s.board.ClearFullRows())
	s.spawnNext()
}

// spawnNext advances the speed-up ratchet, promotes the lookahead to
// the active slot, and draws a new lookahead. A fresh spawn that
// already collides ends the game.
func (s *Session) spawnNext() {
	s.speedUpCounter++
	if s.speedUpCounter >= s.tuning.LocksPerSpeedUp {
		s.gravityInterval -= s.tuning.GravityStep
		if s.gravityInterval < s.tuning.GravityFloor {
			s.gravityInterval = s.tuning.GravityFloor
		}
		s.speedUpCounter = 0
	}

	s.active = SpawnPiece(s.next, s.board.Width())
	s.next = s.source.Next()

	if s.board.Collides(s.active.Cells()) {
		s.gameOver = true
	}
}

// ScoreForRows returns the flat award for clearing n rows in one lock:
// 100, 300, 500, 800 for 1–4, otherwise 0. Hard-drop distance is
// deliberately not scored; points come only from line clears.
func ScoreForRows(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}

// --- Read-only state surface for display and persistence ---

// Width returns the board width in columns.
func (s *Session) Width() int { return s.board.Width() }

// Height returns the board height in rows.
func (s *Session) Height() int { return s.board.Height() }

// CellAt returns the locked cell at (x, y).
func (s *Session) CellAt(x, y int) Cell { return s.board.At(x, y) }

// Active returns a copy of the active piece.
func (s *Session) Active() ActivePiece { return s.active }

// ActiveCells returns the board cells the active piece occupies.
func (s *Session) ActiveCells() []Point { return s.active.Cells() }

// ActiveColor returns the active piece's display color.
func (s *Session) ActiveColor() core.Color { return s.active.Def().Color }

// NextPiece returns the lookahead shape.
func (s *Session) NextPiece() PieceID { return s.next }

// Score returns the accumulated score. It never decreases.
func (s *Session) Score() int { return s.score }

// GravityInterval returns the current time between automatic drops.
func (s *Session) GravityInterval() time.Duration { return s.gravityInterval }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether the session has ended. The state is
// terminal: only a new session or a loaded snapshot replaces it.
func (s *Session) GameOver() bool { return s.gameOver }

// Status returns the state-machine position. Game over wins over
// paused; the two are mutually exclusive in effect.
func (s *Session) Status() Status {
	switch {
	case s.gameOver:
		return StatusGameOver
	case s.paused:
		return StatusPaused
	default:
		return StatusPlaying
	}
}
