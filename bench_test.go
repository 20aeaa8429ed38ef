package pegfit_test

import (
	"testing"

	"github.com/jward/pegfit"
)

// Results land in package-level sinks so the compiler cannot discard
// the calls under measurement.
var (
	benchFits   bool
	benchRadius float64
)

func BenchmarkRoundHoleFits_RoundPeg(b *testing.B) {
	hole := pegfit.NewRoundHole(5)
	peg := pegfit.NewRoundPeg(5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFits = hole.Fits(peg)
	}
}

func BenchmarkRoundHoleFits_SquarePegAdapter(b *testing.B) {
	hole := pegfit.NewRoundHole(5)
	adapter := pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(5))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFits = hole.Fits(adapter)
	}
}

func BenchmarkSquarePegAdapter_EffectiveRadius(b *testing.B) {
	adapter := pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(5))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRadius = adapter.EffectiveRadius()
	}
}
