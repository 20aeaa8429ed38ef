// Package circulartest verifies implementations of the [pegfit.Circular]
// interface against its documented contract.
//
// Implementations are supplied through a factory so the suite can observe
// both a shared value and freshly constructed ones:
//
//	circulartest.Run(t, []circulartest.Case{{
//		Name: "round peg",
//		New:  func() pegfit.Circular { return pegfit.NewRoundPeg(5) },
//		Want: 5,
//	}})
package circulartest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/pegfit"
)

// Case describes one implementation to verify.
type Case struct {
	// Name labels the subtests run for this implementation.
	Name string

	// New returns a fresh value of the implementation under test.
	// Every call must construct an equivalent shape.
	New func() pegfit.Circular

	// Want is the effective radius the implementation must report.
	Want float64

	// Tolerance bounds the allowed difference from Want. Zero demands
	// exact equality.
	Tolerance float64
}

// Run exercises every case against the Circular contract: the reported
// effective radius matches Want, repeated calls and fresh values agree,
// and [pegfit.RoundHole.Fits] treats the radius as an inclusive bound.
func Run(t *testing.T, cases []Case) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			require.NotNil(t, tc.New, "case must supply a factory")

			shape := tc.New()
			require.NotNil(t, shape, "factory must return a shape")

			t.Run("reports expected radius", func(t *testing.T) {
				got := shape.EffectiveRadius()
				if tc.Tolerance > 0 {
					assert.InDelta(t, tc.Want, got, tc.Tolerance)
				} else {
					assert.Equal(t, tc.Want, got)
				}
			})

			t.Run("deterministic across calls", func(t *testing.T) {
				first := shape.EffectiveRadius()
				for i := 0; i < 5; i++ {
					assert.Equal(t, first, shape.EffectiveRadius())
				}
			})

			t.Run("fresh values agree", func(t *testing.T) {
				assert.Equal(t, shape.EffectiveRadius(), tc.New().EffectiveRadius())
			})

			t.Run("radius is an inclusive fit bound", func(t *testing.T) {
				r := shape.EffectiveRadius()
				assert.True(t, pegfit.NewRoundHole(r).Fits(shape),
					"hole of radius %v must accept the shape", r)

				smaller := math.Nextafter(r, math.Inf(-1))
				assert.False(t, pegfit.NewRoundHole(smaller).Fits(shape),
					"hole of radius %v must reject the shape", smaller)
			})
		})
	}
}
