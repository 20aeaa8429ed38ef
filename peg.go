package pegfit

// RoundPeg is a peg with a circular cross-section. It implements
// [Circular] directly: its effective radius is its own radius.
type RoundPeg struct {
	radius float64
}

// NewRoundPeg returns a round peg with the given radius.
func NewRoundPeg(radius float64) RoundPeg {
	return RoundPeg{radius: radius}
}

// Radius returns the peg's radius.
func (p RoundPeg) Radius() float64 {
	return p.radius
}

// EffectiveRadius returns the peg's radius unchanged.
func (p RoundPeg) EffectiveRadius() float64 {
	return p.radius
}

// SquarePeg is a peg with a square cross-section of the given side
// width. It does not implement [Circular]; wrap it in a
// [SquarePegAdapter] to check it against a [RoundHole].
type SquarePeg struct {
	width float64
}

// NewSquarePeg returns a square peg with the given side width.
func NewSquarePeg(width float64) SquarePeg {
	return SquarePeg{width: width}
}

// Width returns the side width of the square cross-section.
func (p SquarePeg) Width() float64 {
	return p.width
}
