package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Snapshot captures a complete session for persistence. Field names
// match the save-file format: board cells are nullable RGB triples in
// row-major order, gravity is stored in milliseconds.
type Snapshot struct {
	Board          []*[3]uint8   `json:"board"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	ActivePiece    SnapshotPiece `json:"active_piece"`
	NextPieceID    int           `json:"next_piece_id"`
	IsGameOver     bool          `json:"is_game_over"`
	GravityDelayMS int64         `json:"gravity_delay_ms"`
	SpeedUpCounter int           `json:"speed_up_counter"`
	Score          int           `json:"score"`
}

// SnapshotPiece is the serialized active piece.
type SnapshotPiece struct {
	ID       int `json:"id"`
	Rotation int `json:"rotation"`
	X        int `json:"x"`
	Y        int `json:"y"`
}

// Capture serializes the session. The pause flag and the gravity
// accumulator are deliberately absent: a restored game always resumes
// live with a fresh gravity reference.
func (s *Session) Capture() Snapshot {
	board := make([]*[3]uint8, len(s.board.cells))
	for i, cell := range s.board.cells {
		if cell.Filled {
			board[i] = &[3]uint8{cell.Color.R, cell.Color.G, cell.Color.B}
		}
	}

	return Snapshot{
		Board:  board,
		Width:  s.board.Width(),
		Height: s.board.Height(),
		ActivePiece: SnapshotPiece{
			ID:       int(s.active.ID),
			Rotation: s.active.Rotation,
			X:        s.active.X,
			Y:        s.active.Y,
		},
		NextPieceID:    int(s.next),
		IsGameOver:     s.gameOver,
		GravityDelayMS: s.gravityInterval.Milliseconds(),
		SpeedUpCounter: s.speedUpCounter,
		Score:          s.score,
	}
}

// Validate checks the snapshot for structural and semantic consistency.
// A snapshot that fails validation must not be applied at all.
func (sn Snapshot) Validate() error {
	if sn.Width <= 0 || sn.Height <= 0 {
		return fmt.Errorf("game: snapshot dimensions must be positive, got %dx%d", sn.Width, sn.Height)
	}
	if len(sn.Board) != sn.Width*sn.Height {
		return fmt.Errorf("game: snapshot board has %d cells, want %d (%dx%d)",
			len(sn.Board), sn.Width*sn.Height, sn.Width, sn.Height)
	}
	if !PieceID(sn.ActivePiece.ID).Valid() {
		return fmt.Errorf("game: snapshot active piece id %d out of range", sn.ActivePiece.ID)
	}
	if r := sn.ActivePiece.Rotation; r < 0 || r >= RotationCount(PieceID(sn.ActivePiece.ID)) {
		return fmt.Errorf("game: snapshot rotation %d out of range for piece %s",
			r, PieceID(sn.ActivePiece.ID))
	}
	if !PieceID(sn.NextPieceID).Valid() {
		return fmt.Errorf("game: snapshot next piece id %d out of range", sn.NextPieceID)
	}
	if sn.GravityDelayMS <= 0 {
		return fmt.Errorf("game: snapshot gravity delay %dms must be positive", sn.GravityDelayMS)
	}
	if sn.SpeedUpCounter < 0 {
		return fmt.Errorf("game: snapshot speed-up counter %d must not be negative", sn.SpeedUpCounter)
	}
	if sn.Score < 0 {
		return fmt.Errorf("game: snapshot score %d must not be negative", sn.Score)
	}
	return nil
}

// Restore builds a session from a snapshot, replacing state wholesale.
// Validation runs before any field is applied; a bad snapshot leaves
// nothing half-built. The restored session is never paused and its
// gravity reference starts fresh.
func Restore(sn Snapshot, source PieceSource, tuning Tuning) (*Session, error) {
	if err := sn.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("game: piece source must not be nil")
	}

	board := NewBoard(sn.Width, sn.Height)
	for i, c := range sn.Board {
		if c != nil {
			board.cells[i] = Cell{Filled: true, Color: core.RGB(c[0], c[1], c[2])}
		}
	}

	return &Session{
		board: board,
		active: ActivePiece{
			ID:       PieceID(sn.ActivePiece.ID),
			Rotation: sn.ActivePiece.Rotation,
			X:        sn.ActivePiece.X,
			Y:        sn.ActivePiece.Y,
		},
		next:            PieceID(sn.NextPieceID),
		source:          source,
		tuning:          tuning,
		score:           sn.Score,
		gravityInterval: time.Duration(sn.GravityDelayMS) * time.Millisecond,
		speedUpCounter:  sn.SpeedUpCounter,
		gameOver:        sn.IsGameOver,
	}, nil
}
