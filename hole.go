package pegfit

// RoundHole is a circular opening with a fixed radius.
type RoundHole struct {
	radius float64
}

// NewRoundHole returns a hole with the given radius. The radius is not
// validated; a negative value flows through [RoundHole.Fits] as an
// ordinary number.
func NewRoundHole(radius float64) RoundHole {
	return RoundHole{radius: radius}
}

// Radius returns the hole's radius.
func (h RoundHole) Radius() float64 {
	return h.radius
}

// Fits reports whether the shape fits inside the hole by comparing the
// hole's radius against the shape's effective radius. The comparison is
// inclusive: a shape whose effective radius equals the hole's radius
// fits.
func (h RoundHole) Fits(shape Circular) bool {
	return h.radius >= shape.EffectiveRadius()
}
