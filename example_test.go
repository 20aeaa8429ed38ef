package pegfit_test

import (
	"fmt"

	"github.com/jward/pegfit"
)

// A hole of radius 5 accepts a round peg of radius 5 and a square peg
// of width 5, but not a square peg of width 10.
func Example() {
	hole := pegfit.NewRoundHole(5)

	fmt.Println(hole.Fits(pegfit.NewRoundPeg(5)))
	fmt.Println(hole.Fits(pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(5))))
	fmt.Println(hole.Fits(pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(10))))

	// Output:
	// true
	// true
	// false
}

func ExampleRoundHole_Fits() {
	hole := pegfit.NewRoundHole(5)
	shapes := []pegfit.Circular{
		pegfit.NewRoundPeg(3),
		pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(8)),
	}

	for _, shape := range shapes {
		fmt.Println(hole.Fits(shape))
	}

	// Output:
	// true
	// false
}

func ExampleSquarePegAdapter_EffectiveRadius() {
	adapter := pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(5))
	fmt.Printf("%.4f\n", adapter.EffectiveRadius())

	// Output:
	// 3.5355
}
