package game

import "math/rand"

// PieceSource supplies the next shape to enter the lookahead slot.
// The session never calls the RNG directly so tests can script the
// piece order with a deterministic source.
type PieceSource interface {
	Next() PieceID
}

type randSource struct {
	rng *rand.Rand
}

// NewRandSource returns a PieceSource drawing uniformly from the
// catalog using the given seed.
func NewRandSource(seed int64) PieceSource {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Next() PieceID {
	return PieceID(s.rng.Intn(int(PieceCount)))
}
