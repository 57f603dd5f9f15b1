package matern

import (
	"math"
)

func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func RadToDeg(angle float64) float64 {
	return angle * 180 / math.Pi
}

func pow2(x float64) float64 {
	return x * x
}

// linspace returns n evenly spaced values over [0,1]. A single-point grid
// sits at the origin.
func linspace(n int) []float64 {
	ls := make([]float64, n)
	if n == 1 {
		return ls
	}
	step := 1.0 / float64(n-1)
	for i := range ls {
		ls[i] = float64(i) * step
	}
	return ls
}
