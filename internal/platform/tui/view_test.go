package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

type fixedSource struct{ id game.PieceID }

func (f fixedSource) Next() game.PieceID { return f.id }

func newViewSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(10, 20, fixedSource{game.PieceO}, game.DefaultTuning())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestDrawGameShowsPanel(t *testing.T) {
	sess := newViewSession(t)
	sess.Handle(game.IntentHardDrop)

	screen := core.NewScreen(80, 24)
	drawGame(screen, sess, 4200, "")

	out := screen.String()
	for _, want := range []string{"SCORE", "HIGH SCORE", "4200", "NEXT", "SPEED"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDrawGameOverlays(t *testing.T) {
	sess := newViewSession(t)
	screen := core.NewScreen(80, 24)

	sess.Handle(game.IntentPauseToggle)
	drawGame(screen, sess, 0, "")
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused session should show the PAUSED overlay")
	}

	sess.Handle(game.IntentPauseToggle)
	drawGame(screen, sess, 0, "")
	if strings.Contains(screen.String(), "PAUSED") {
		t.Error("overlay should disappear after unpause")
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	// Fill the spawn area so the next lock tops out.
	var filled []game.Point
	for x := 3; x <= 6; x++ {
		for y := 0; y < 19; y++ {
			filled = append(filled, game.Point{X: x, Y: y})
		}
	}
	cells := make([]*[3]uint8, 10*20)
	for _, p := range filled {
		cells[p.Y*10+p.X] = &[3]uint8{128, 128, 128}
	}
	sn := game.Snapshot{
		Board:          cells,
		Width:          10,
		Height:         20,
		ActivePiece:    game.SnapshotPiece{ID: int(game.PieceO), X: 0, Y: 18},
		NextPieceID:    int(game.PieceO),
		GravityDelayMS: 1000,
	}
	sess, err := game.Restore(sn, fixedSource{game.PieceO}, game.DefaultTuning())
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	sess.Handle(game.IntentSoftDrop)
	if !sess.GameOver() {
		t.Fatal("session should be over")
	}

	screen := core.NewScreen(80, 24)
	drawGame(screen, sess, 0, "")
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("finished session should show the GAME OVER overlay")
	}
}

func TestDrawGameStatusMessage(t *testing.T) {
	screen := core.NewScreen(80, 30)
	drawGame(screen, newViewSession(t), 0, "game saved")

	if !strings.Contains(screen.String(), "game saved") {
		t.Error("status message should appear under the board")
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	screen := core.NewScreen(20, 10)
	drawGame(screen, newViewSession(t), 0, "")

	if !strings.Contains(screen.String(), "terminal too small") {
		t.Error("undersized terminal should show a hint instead of a clipped board")
	}
}

func TestRenderScreenShape(t *testing.T) {
	screen := core.NewScreen(10, 3)
	screen.DrawText(0, 1, "hi", core.ColorCyan)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen produced %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("styled text missing from output: %q", lines[1])
	}
}
