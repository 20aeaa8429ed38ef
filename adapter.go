package pegfit

import "math"

// SquarePegAdapter adapts a [SquarePeg] to the [Circular] capability.
// The adapter holds its own copy of the peg and derives the effective
// radius from the peg's width: half the diagonal of the square, which
// is the radius of the circle circumscribing it.
type SquarePegAdapter struct {
	peg SquarePeg
}

// NewSquarePegAdapter wraps the given square peg.
func NewSquarePegAdapter(peg SquarePeg) SquarePegAdapter {
	return SquarePegAdapter{peg: peg}
}

// Peg returns the wrapped square peg.
func (a SquarePegAdapter) Peg() SquarePeg {
	return a.peg
}

// EffectiveRadius returns width * sqrt(2) / 2, recomputed from the
// wrapped peg on every call.
func (a SquarePegAdapter) EffectiveRadius() float64 {
	return a.peg.Width() * math.Sqrt2 / 2
}
