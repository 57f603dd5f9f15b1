package matern

import (
	"math"
	"testing"

	vec2d "github.com/flywave/go3d/float64/vec2"

	"github.com/stretchr/testify/assert"
)

func TestAnisotropyMatrixIdentityAtRatioOne(t *testing.T) {
	a := assert.New(t)

	for _, angle := range []float64{0, 0.3, math.Pi / 4, 1.7, -2.1} {
		m := AnisotropyMatrix(angle, 1)
		a.InDelta(1, m[0][0], 1e-15)
		a.InDelta(0, m[0][1], 1e-15)
		a.InDelta(0, m[1][0], 1e-15)
		a.InDelta(1, m[1][1], 1e-15)
	}
}

func TestAnisotropicDistanceEuclideanAtRatioOne(t *testing.T) {
	a := assert.New(t)

	delta := vec2d.T{0.3, -0.4}
	for _, angle := range []float64{0, 0.9, -1.2} {
		m := AnisotropyMatrix(angle, 1)
		a.InDelta(0.5, AnisotropicDistance(delta, &m), 1e-14, "angle=%v", angle)
	}
}

func TestAnisotropyMatrixAxisAligned(t *testing.T) {
	a := assert.New(t)

	// angle 0 scales only the second axis
	m := AnisotropyMatrix(0, 4)
	dx := AnisotropicDistance(vec2d.T{1, 0}, &m)
	dy := AnisotropicDistance(vec2d.T{0, 1}, &m)
	a.InDelta(1, dx, 1e-14)
	a.InDelta(2, dy, 1e-14)

	// a quarter turn moves the stretched axis onto x
	m = AnisotropyMatrix(math.Pi/2, 4)
	dx = AnisotropicDistance(vec2d.T{1, 0}, &m)
	dy = AnisotropicDistance(vec2d.T{0, 1}, &m)
	a.InDelta(2, dx, 1e-14)
	a.InDelta(1, dy, 1e-14)
}

func TestAnisotropyMatrixSymmetricPositiveDefinite(t *testing.T) {
	a := assert.New(t)

	for _, angle := range []float64{-1.5, -0.2, 0, 0.7, 2.9} {
		for _, ratio := range []float64{0.5, 1, 2, 5} {
			m := AnisotropyMatrix(angle, ratio)
			a.Equal(m[0][1], m[1][0])

			det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
			a.Greater(m[0][0], 0.0)
			a.Greater(det, 0.0)

			// determinant equals the axis scaling
			a.InDelta(ratio, det, 1e-12)
		}
	}
}
