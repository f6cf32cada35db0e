package game

import "github.com/vovakirdan/blockfall/internal/core"

// Cell is one board cell: empty, or occupied with a display color.
// Occupancy is the only fact the rules depend on.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is a fixed-size grid of cells, row-major with the top row at
// index 0. The cell slice length is always width*height; the grid is
// never resized except by wholesale session replacement.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board. Dimensions must be positive; the
// session constructor validates them before calling.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y). Coordinates outside the grid return an
// empty cell; y < 0 is above the visible board and always empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Collides reports whether any candidate cell leaves the playable area
// or overlaps an occupied cell. Cells with y < 0 are exempt from the
// occupancy check — they are above the visible board and cannot overlap
// anything — but must still satisfy the horizontal bounds. That
// exemption is what lets pieces spawn partially off-screen.
func (b *Board) Collides(cells []Point) bool {
	for _, p := range cells {
		if p.X < 0 || p.X >= b.width || p.Y >= b.height {
			return true
		}
		if p.Y >= 0 && b.cells[p.Y*b.width+p.X].Filled {
			return true
		}
	}
	return false
}

// Lock writes the color into every cell with y >= 0. Cells still above
// the visible board are silently dropped; the session raises game over
// before a piece that never descended can lock.
func (b *Board) Lock(cells []Point, c core.Color) {
	for _, p := range cells {
		if p.Y < 0 || p.X < 0 || p.X >= b.width || p.Y >= b.height {
			continue
		}
		b.cells[p.Y*b.width+p.X] = Cell{Filled: true, Color: c}
	}
}

// ClearFullRows removes every completely occupied row, compacts the
// remaining rows downward preserving their relative order, fills the
// vacated top rows empty, and returns the number of rows cleared. The
// count is bounded only by the board height. The operation is atomic
// over the whole board: all full rows go at once.
func (b *Board) ClearFullRows() int {
	next := make([]Cell, len(b.cells))
	cleared := 0
	dst := b.height - 1

	for y := b.height - 1; y >= 0; y-- {
		row := b.cells[y*b.width : (y+1)*b.width]
		if rowFull(row) {
			cleared++
			continue
		}
		copy(next[dst*b.width:(dst+1)*b.width], row)
		dst--
	}

	b.cells = next
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}
