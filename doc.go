// Package pegfit decides whether pegs fit round holes.
//
// A [RoundHole] accepts any shape that can report an effective radius:
// the radius of the circle used for compatibility comparisons. Round
// pegs report their own radius. Square pegs know nothing about radii;
// wrapping one in a [SquarePegAdapter] derives an effective radius from
// its width, which lets it be checked against the same holes.
//
// # Shapes
//
//   - [RoundPeg] implements [Circular] directly; its effective radius is
//     its own radius.
//   - [SquarePeg] is a plain square cross-section and does not implement
//     [Circular] on its own.
//   - [SquarePegAdapter] wraps a [SquarePeg] and implements [Circular]
//     with the radius of the square's circumscribing circle,
//     width * sqrt(2) / 2.
//
// # Usage
//
// Construct a hole and check shapes against it:
//
//	hole := pegfit.NewRoundHole(5)
//
//	hole.Fits(pegfit.NewRoundPeg(5))                               // true
//	hole.Fits(pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(5)))  // true
//	hole.Fits(pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(10))) // false
//
// The comparison is inclusive: a shape whose effective radius equals the
// hole's radius fits.
//
// # Numeric behavior
//
// All values are plain float64 and none are validated at construction.
// Negative radii and widths flow through [RoundHole.Fits] as ordinary
// numbers; callers that need stricter geometry must enforce it
// themselves. Every type in this package is an immutable value and safe
// for concurrent use.
//
// Implementations of [Circular] outside this package can be verified
// with the circulartest package.
package pegfit
