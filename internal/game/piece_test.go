package game

import "testing"

func TestCatalogRotationCounts(t *testing.T) {
	tests := []struct {
		id   PieceID
		want int
	}{
		{PieceI, 2},
		{PieceO, 1},
		{PieceT, 4},
		{PieceL, 4},
		{PieceJ, 4},
		{PieceS, 2},
		{PieceZ, 2},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if got := RotationCount(tt.id); got != tt.want {
				t.Errorf("RotationCount(%s) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestCatalogBitmapsAreTetrominoes(t *testing.T) {
	for id := PieceID(0); id < PieceCount; id++ {
		for ri, st := range Catalog(id).Rotations {
			if st.Width <= 0 {
				t.Errorf("%s rotation %d: width %d", id, ri, st.Width)
			}
			if len(st.Bitmap)%st.Width != 0 {
				t.Errorf("%s rotation %d: bitmap length %d not divisible by width %d",
					id, ri, len(st.Bitmap), st.Width)
			}

			filled := 0
			for _, c := range st.Bitmap {
				if c == 1 {
					filled++
				}
			}
			if filled != 4 {
				t.Errorf("%s rotation %d: %d filled cells, want 4", id, ri, filled)
			}
		}
	}
}

func TestSpawnPieceCentering(t *testing.T) {
	tests := []struct {
		id         PieceID
		boardWidth int
		wantX      int
	}{
		{PieceO, 10, 4}, // (10-2)/2
		{PieceI, 10, 3}, // (10-4)/2
		{PieceT, 10, 3}, // (10-3)/2, odd leftover biases left
		{PieceO, 9, 3},  // (9-2)/2
	}

	for _, tt := range tests {
		p := SpawnPiece(tt.id, tt.boardWidth)
		if p.X != tt.wantX {
			t.Errorf("SpawnPiece(%s, %d).X = %d, want %d", tt.id, tt.boardWidth, p.X, tt.wantX)
		}
		if p.Y != 0 || p.Rotation != 0 {
			t.Errorf("SpawnPiece(%s, %d) = y %d rotation %d, want 0/0",
				tt.id, tt.boardWidth, p.Y, p.Rotation)
		}
	}
}

func TestActivePieceCells(t *testing.T) {
	// T piece, spawn orientation (x.x / xxx is 010/111), anchored at (3, 5)
	p := ActivePiece{ID: PieceT, X: 3, Y: 5}

	want := []Point{{4, 5}, {3, 6}, {4, 6}, {5, 6}}
	got := p.Cells()

	if len(got) != len(want) {
		t.Fatalf("Cells() returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v (bitmap scan order)", i, got[i], want[i])
		}
	}
}

func TestActivePieceCellsRepeatable(t *testing.T) {
	p := ActivePiece{ID: PieceS, X: 2, Y: -1}

	first := p.Cells()
	second := p.Cells()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Cells() not repeatable: %v vs %v", first, second)
		}
	}
}

func TestActivePieceRotationWraps(t *testing.T) {
	p := ActivePiece{ID: PieceS}
	p = p.rotated()
	if p.Rotation != 1 {
		t.Errorf("rotation after one step = %d, want 1", p.Rotation)
	}
	p = p.rotated()
	if p.Rotation != 0 {
		t.Errorf("rotation should wrap at this shape's own state count, got %d", p.Rotation)
	}

	o := ActivePiece{ID: PieceO}.rotated()
	if o.Rotation != 0 {
		t.Errorf("O piece has a single state, rotation = %d", o.Rotation)
	}
}
