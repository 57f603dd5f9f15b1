package matern

import (
	"math"
)

const (
	BILINEAR   = "bilinear"
	HYPERBOLIC = "hyperbolic"
)

// Interpolator blends the four corner values of a grid cell. x and y are
// the fractional offsets in [0,1] measured from the south-west corner.
type Interpolator interface {
	Interpolate(southWest, southEast, northWest, northEast, x, y float64) float64
}

func Lerp(value1, value2, amount float64) float64 { return value1 + (value2-value1)*amount }

type BilinearInterpolator struct{}

func (i *BilinearInterpolator) Interpolate(southWest, southEast, northWest, northEast, x, y float64) float64 {
	return Lerp(Lerp(southWest, northWest, y), Lerp(southEast, northEast, y), x)
}

type HyperbolicInterpolator struct{}

func (i *HyperbolicInterpolator) Interpolate(southWest, southEast, northWest, northEast, x, y float64) float64 {
	a00 := southWest
	a10 := southEast - southWest
	a01 := northWest - southWest
	a11 := southWest - southEast - northWest + northEast
	return a00 + a10*x + a01*y + a11*x*y
}

// Resample interpolates the field onto a width×height lattice over the
// unit square. The result is row-major with row 0 at y=0, like Value.
func (h *Grid) Resample(width, height int, interp Interpolator) []float64 {
	n := h.Size
	out := make([]float64, width*height)
	for r := 0; r < height; r++ {
		v := axisPos(r, height)
		for c := 0; c < width; c++ {
			u := axisPos(c, width)

			fx := u * float64(n-1)
			fy := v * float64(n-1)
			x0 := int(math.Floor(fx))
			y0 := int(math.Floor(fy))
			x1 := x0 + 1
			y1 := y0 + 1
			if x1 > n-1 {
				x1 = n - 1
			}
			if y1 > n-1 {
				y1 = n - 1
			}

			out[r*width+c] = interp.Interpolate(
				h.Value(y0, x0), h.Value(y0, x1),
				h.Value(y1, x0), h.Value(y1, x1),
				fx-float64(x0), fy-float64(y0))
		}
	}
	return out
}

func axisPos(i, count int) float64 {
	if count == 1 {
		return 0
	}
	return float64(i) / float64(count-1)
}
