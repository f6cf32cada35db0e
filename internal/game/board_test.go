package game

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

var testColor = core.RGB(252, 3, 3)

// fillRow fills row y completely except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Lock([]Point{{x, y}}, testColor)
		}
	}
}

func TestBoardCollidesBounds(t *testing.T) {
	b := NewBoard(10, 20)

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"inside", Point{5, 5}, false},
		{"left of board", Point{-1, 5}, true},
		{"right of board", Point{10, 5}, true},
		{"below floor", Point{5, 20}, true},
		{"above visible board", Point{5, -1}, false},
		{"above board but out of column range", Point{-1, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Collides([]Point{tt.pt}); got != tt.want {
				t.Errorf("Collides(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestBoardCollidesOccupancy(t *testing.T) {
	b := NewBoard(10, 20)
	b.Lock([]Point{{4, 10}}, testColor)

	if !b.Collides([]Point{{4, 10}}) {
		t.Error("Collides should detect overlap with an occupied cell")
	}
	if b.Collides([]Point{{5, 10}}) {
		t.Error("Collides should not trigger on a neighboring empty cell")
	}

	// Occupancy is only checked for y >= 0: a cell above the board
	// cannot overlap anything even when column 4 has locked cells.
	if b.Collides([]Point{{4, -1}}) {
		t.Error("cells above the board must be exempt from the occupancy check")
	}
}

func TestBoardLockDropsCellsAboveBoard(t *testing.T) {
	b := NewBoard(10, 20)
	b.Lock([]Point{{3, -1}, {3, 0}}, testColor)

	if !b.At(3, 0).Filled {
		t.Error("cell at y=0 should be locked")
	}
	// Nothing observable should remain of the y=-1 cell.
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if (x != 3 || y != 0) && b.At(x, y).Filled {
				t.Fatalf("unexpected filled cell at (%d,%d)", x, y)
			}
		}
	}
}

func TestBoardLockWritesColor(t *testing.T) {
	b := NewBoard(4, 4)
	c := core.RGB(3, 48, 252)
	b.Lock([]Point{{1, 2}}, c)

	cell := b.At(1, 2)
	if !cell.Filled || cell.Color != c {
		t.Errorf("At(1,2) = %+v, want filled with %v", cell, c)
	}
}

func TestClearFullRowsNoneFull(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19, 0) // one gap keeps the row from being full
	before := b.At(5, 19)

	if got := b.ClearFullRows(); got != 0 {
		t.Errorf("ClearFullRows() = %d, want 0", got)
	}
	if b.At(5, 19) != before {
		t.Error("grid must be unchanged when no row is full")
	}

	// Idempotent: a second scan still clears nothing.
	if got := b.ClearFullRows(); got != 0 {
		t.Errorf("second ClearFullRows() = %d, want 0", got)
	}
}

func TestClearFullRowsSingle(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	b.Lock([]Point{{2, 18}}, testColor)

	if got := b.ClearFullRows(); got != 1 {
		t.Fatalf("ClearFullRows() = %d, want 1", got)
	}

	// The cell above the cleared row shifts down by one.
	if !b.At(2, 19).Filled {
		t.Error("cell from row 18 should compact down to row 19")
	}
	if b.At(2, 18).Filled {
		t.Error("row 18 should be vacated")
	}
}

func TestClearFullRowsSimultaneous(t *testing.T) {
	b := NewBoard(10, 20)

	// Full rows at 19 and 17, survivors at 18 and 16 with distinct shapes.
	fillRow(b, 19)
	fillRow(b, 17)
	b.Lock([]Point{{1, 18}}, testColor)
	b.Lock([]Point{{7, 16}}, testColor)

	if got := b.ClearFullRows(); got != 2 {
		t.Fatalf("ClearFullRows() = %d, want 2", got)
	}

	// Survivors compact downward preserving relative order.
	if !b.At(1, 19).Filled {
		t.Error("row 18 survivor should land on row 19")
	}
	if !b.At(7, 18).Filled {
		t.Error("row 16 survivor should land on row 18")
	}
	for y := 0; y < 18; y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y).Filled {
				t.Fatalf("vacated row %d should be empty, found cell at x=%d", y, x)
			}
		}
	}
}

func TestClearFullRowsUncapped(t *testing.T) {
	b := NewBoard(4, 6)
	for y := 0; y < 6; y++ {
		fillRow(b, y)
	}

	// More than the four rows a single tetromino can clear; the board
	// itself does not cap the count.
	if got := b.ClearFullRows(); got != 6 {
		t.Errorf("ClearFullRows() = %d, want 6", got)
	}
}

func TestClearFullRowsFullColumnIsNotFullRow(t *testing.T) {
	b := NewBoard(10, 20)
	for y := 0; y < 20; y++ {
		b.Lock([]Point{{3, y}}, testColor)
	}

	if got := b.ClearFullRows(); got != 0 {
		t.Errorf("a full column cleared %d rows, want 0", got)
	}
}
