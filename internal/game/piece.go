// Package game implements the falling-block rules engine: the piece
// catalog, the board grid, the active piece, and the play session state
// machine. It contains pure logic with no terminal or file dependencies;
// the platform layers consume its read-only state surface.
package game

import "github.com/vovakirdan/blockfall/internal/core"

// PieceID identifies one of the seven tetromino shapes in the catalog.
type PieceID int

const (
	PieceI PieceID = iota
	PieceO
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ

	// PieceCount is the number of shapes in the catalog.
	PieceCount
)

// String returns the canonical one-letter shape name.
func (id PieceID) String() string {
	switch id {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether id indexes a catalog entry.
func (id PieceID) Valid() bool {
	return id >= 0 && id < PieceCount
}

// RotationState is one orientation of a shape: an occupancy bitmap over
// a bounding box of the given width, in row-major scan order.
type RotationState struct {
	Width  int
	Bitmap []uint8
}

// Piece is an immutable shape definition shared by every instance of
// that shape: its precomputed rotation states and display color.
// Rotation counts are shape-dependent (O has one state, I/S/Z two,
// T/L/J four); they are tables, not derived by rotating a matrix.
type Piece struct {
	Rotations []RotationState
	Color     core.Color
}

// catalog holds the seven classic tetrominoes. Process-wide immutable;
// indexed by PieceID, never mutated after init.
var catalog = [PieceCount]Piece{
	PieceI: {
		Rotations: []RotationState{
			{Width: 4, Bitmap: []uint8{1, 1, 1, 1}},
			{Width: 1, Bitmap: []uint8{1, 1, 1, 1}},
		},
		Color: core.RGB(3, 252, 248),
	},
	PieceO: {
		Rotations: []RotationState{
			{Width: 2, Bitmap: []uint8{1, 1, 1, 1}},
		},
		Color: core.RGB(252, 244, 3),
	},
	PieceT: {
		Rotations: []RotationState{
			{Width: 3, Bitmap: []uint8{0, 1, 0, 1, 1, 1}},
			{Width: 2, Bitmap: []uint8{1, 0, 1, 1, 1, 0}},
			{Width: 3, Bitmap: []uint8{1, 1, 1, 0, 1, 0}},
			{Width: 2, Bitmap: []uint8{0, 1, 1, 1, 0, 1}},
		},
		Color: core.RGB(161, 3, 252),
	},
	PieceL: {
		Rotations: []RotationState{
			{Width: 3, Bitmap: []uint8{0, 0, 1, 1, 1, 1}},
			{Width: 2, Bitmap: []uint8{1, 0, 1, 0, 1, 1}},
			{Width: 3, Bitmap: []uint8{1, 1, 1, 1, 0, 0}},
			{Width: 2, Bitmap: []uint8{1, 1, 0, 1, 0, 1}},
		},
		Color: core.RGB(252, 161, 3),
	},
	PieceJ: {
		Rotations: []RotationState{
			{Width: 3, Bitmap: []uint8{1, 0, 0, 1, 1, 1}},
			{Width: 2, Bitmap: []uint8{1, 1, 1, 0, 1, 0}},
			{Width: 3, Bitmap: []uint8{1, 1, 1, 0, 0, 1}},
			{Width: 2, Bitmap: []uint8{0, 1, 0, 1, 1, 1}},
		},
		Color: core.RGB(3, 48, 252),
	},
	PieceS: {
		Rotations: []RotationState{
			{Width: 3, Bitmap: []uint8{0, 1, 1, 1, 1, 0}},
			{Width: 2, Bitmap: []uint8{1, 0, 1, 1, 0, 1}},
		},
		Color: core.RGB(3, 252, 28),
	},
	PieceZ: {
		Rotations: []RotationState{
			{Width: 3, Bitmap: []uint8{1, 1, 0, 0, 1, 1}},
			{Width: 2, Bitmap: []uint8{0, 1, 1, 1, 1, 0}},
		},
		Color: core.RGB(252, 3, 3),
	},
}

// Catalog returns the definition for the given shape.
// The returned pointer references shared immutable data.
func Catalog(id PieceID) *Piece {
	return &catalog[id]
}

// RotationCount returns how many distinct orientations the shape has.
func RotationCount(id PieceID) int {
	return len(catalog[id].Rotations)
}
