package pegfit

// Circular is the capability shared by every shape that can be measured
// against a [RoundHole]. Implementations must be pure: EffectiveRadius
// depends only on the shape's own state, has no side effects, and
// returns the same value on every call.
type Circular interface {
	// EffectiveRadius returns the radius of the circle used for
	// hole-compatibility comparisons.
	EffectiveRadius() float64
}

// Compile-time conformance checks.
var (
	_ Circular = RoundPeg{}
	_ Circular = SquarePegAdapter{}
)
