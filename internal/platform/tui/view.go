package tui

import (
	"strconv"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

// Layout constants. Board cells are drawn two runes wide so the
// playfield looks roughly square in a terminal.
const (
	cellWidth  = 2
	panelWidth = 22
)

// drawGame renders the whole play screen into the buffer: board frame,
// locked cells, active piece, side panel, and status overlays.
func drawGame(s *core.Screen, sess *game.Session, highScore int, status string) {
	s.Clear()

	boxW := sess.Width()*cellWidth + 2
	boxH := sess.Height() + 2
	if s.Width() < boxW+panelWidth || s.Height() < boxH {
		s.DrawTextCentered(s.Height()/2, "terminal too small", core.ColorRed)
		return
	}

	s.DrawBox(0, 0, boxW, boxH, core.ColorGray)

	for y := 0; y < sess.Height(); y++ {
		for x := 0; x < sess.Width(); x++ {
			cell := sess.CellAt(x, y)
			switch {
			case cell.Filled:
				drawBlock(s, x, y, cell.Color)
			case (x+y)%2 == 0:
				// Checkered dots make empty columns easier to track.
				s.SetCell(1+x*cellWidth, 1+y, '·', core.ColorGray)
			}
		}
	}

	if !sess.GameOver() {
		color := sess.ActiveColor()
		for _, p := range sess.ActiveCells() {
			if p.Y >= 0 {
				drawBlock(s, p.X, p.Y, color)
			}
		}
	}

	drawPanel(s, boxW+2, sess, highScore)

	switch sess.Status() {
	case game.StatusPaused:
		drawOverlay(s, boxW, sess.Height(), "PAUSED")
	case game.StatusGameOver:
		drawOverlay(s, boxW, sess.Height(), "GAME OVER", "press r to restart")
	}

	if status != "" && boxH < s.Height() {
		s.DrawText(1, boxH, status, core.ColorYellow)
	}
}

// drawBlock fills one board cell.
func drawBlock(s *core.Screen, x, y int, c core.Color) {
	s.SetCell(1+x*cellWidth, 1+y, '█', c)
	s.SetCell(2+x*cellWidth, 1+y, '█', c)
}

// drawPanel renders the score column to the right of the board.
func drawPanel(s *core.Screen, x int, sess *game.Session, highScore int) {
	s.DrawText(x, 1, "SCORE", core.ColorGray)
	s.DrawText(x, 2, strconv.Itoa(sess.Score()), core.ColorWhite)

	s.DrawText(x, 4, "HIGH SCORE", core.ColorGray)
	s.DrawText(x, 5, strconv.Itoa(highScore), core.ColorWhite)

	s.DrawText(x, 7, "NEXT", core.ColorGray)
	drawPreview(s, x, 8, sess.NextPiece())

	s.DrawText(x, 11, "SPEED", core.ColorGray)
	s.DrawText(x, 12, sess.GravityInterval().String(), core.ColorWhite)

	s.DrawText(x, 14, "a/d move  w rotate", core.ColorGray)
	s.DrawText(x, 15, "s soft  space drop", core.ColorGray)
	s.DrawText(x, 16, "p pause  r restart", core.ColorGray)
	s.DrawText(x, 17, "^s save  ^l load", core.ColorGray)
	s.DrawText(x, 18, "q quit", core.ColorGray)
}

// drawPreview renders the lookahead piece in its spawn orientation.
func drawPreview(s *core.Screen, x, y int, id game.PieceID) {
	def := game.Catalog(id)
	state := def.Rotations[0]
	for i, v := range state.Bitmap {
		if v != 1 {
			continue
		}
		cx := i % state.Width
		cy := i / state.Width
		s.SetCell(x+cx*cellWidth, y+cy, '█', def.Color)
		s.SetCell(x+cx*cellWidth+1, y+cy, '█', def.Color)
	}
}

// drawOverlay centers message lines inside the board box.
func drawOverlay(s *core.Screen, boxW, boardH int, lines ...string) {
	y := 1 + boardH/2 - len(lines)/2
	for i, line := range lines {
		x := (boxW - len(line)) / 2
		if x < 1 {
			x = 1
		}
		s.DrawText(x, y+i, line, core.ColorWhite)
	}
}
