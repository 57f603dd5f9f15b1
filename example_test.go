package matern

import (
	"fmt"
	"math/rand"
)

func ExampleCovariance() {
	// smoothness 1/2 is the exponential kernel: exp(-0.1/0.2) = exp(-0.5)
	cov, _ := Covariance(0.1, 1.0, 0.2, 0.5)
	fmt.Printf("%.6f\n", cov)
	// Output:
	// 0.606531
}

func ExampleSynthesize() {
	params := FieldParams{
		GridSize:   4,
		Smoothness: 1.5,
		Variance:   Constant(1),
		Range:      Constant(0.2),
		AngleDeg:   Constant(0),
		Ratio:      Constant(1),
	}

	field, _ := Synthesize(params, rand.New(rand.NewSource(42)))
	fmt.Println(len(field.Values), field.Grid.Size)
	// Output:
	// 16 4
}
