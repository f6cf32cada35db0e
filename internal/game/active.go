package game

// Point is a board coordinate. Y grows downward; the top visible row is 0.
type Point struct {
	X, Y int
}

// ActivePiece is the currently falling shape instance: a catalog
// reference plus its rotation index and top-left anchor in board
// coordinates. Y may be negative while the piece is still spawning
// above the visible board.
type ActivePiece struct {
	ID       PieceID
	Rotation int
	X, Y     int
}

// SpawnPiece creates a piece anchored at the top of the board,
// horizontally centered. Integer division biases odd leftovers to the
// left, matching classic behavior.
func SpawnPiece(id PieceID, boardWidth int) ActivePiece {
	width := catalog[id].Rotations[0].Width
	return ActivePiece{
		ID: id,
		X:  (boardWidth - width) / 2,
		Y:  0,
	}
}

// Def returns the shared catalog definition for this piece.
func (p ActivePiece) Def() *Piece {
	return &catalog[p.ID]
}

// state returns the current rotation state.
func (p ActivePiece) state() RotationState {
	return catalog[p.ID].Rotations[p.Rotation]
}

// Cells derives the board coordinates occupied by the piece in its
// current rotation and position. The order is bitmap scan order within
// the piece's bounding box. Cells is a pure derivation: callers may
// invoke it repeatedly and mutate the piece between calls.
func (p ActivePiece) Cells() []Point {
	st := p.state()
	pts := make([]Point, 0, 4)
	for i, filled := range st.Bitmap {
		if filled == 0 {
			continue
		}
		pts = append(pts, Point{
			X: p.X + i%st.Width,
			Y: p.Y + i/st.Width,
		})
	}
	return pts
}

// translated returns a copy of the piece shifted by (dx, dy).
func (p ActivePiece) translated(dx, dy int) ActivePiece {
	p.X += dx
	p.Y += dy
	return p
}

// rotated returns a copy advanced to the next rotation state, wrapping
// modulo this shape's own state count.
func (p ActivePiece) rotated() ActivePiece {
	p.Rotation = (p.Rotation + 1) % RotationCount(p.ID)
	return p
}
