package matern

import (
	"math"

	mat2d "github.com/flywave/go3d/float64/mat2"
	vec2d "github.com/flywave/go3d/float64/vec2"
)

// AnisotropyMatrix builds the metric tensor R(θ)·diag(1, ratio)·R(θ)ᵀ,
// a symmetric positive-definite 2×2 matrix that stretches distance along
// the rotated second axis by ratio. At ratio 1 it is the identity and the
// induced distance is Euclidean for any angle.
func AnisotropyMatrix(angleRad, ratio float64) mat2d.T {
	c := math.Cos(angleRad)
	s := math.Sin(angleRad)

	var m mat2d.T
	m[0][0] = c*c + ratio*s*s
	m[0][1] = c * s * (1 - ratio)
	m[1][0] = m[0][1]
	m[1][1] = s*s + ratio*c*c
	return m
}

// AnisotropicDistance returns sqrt(Δᵀ·M·Δ) for a displacement Δ.
func AnisotropicDistance(delta vec2d.T, m *mat2d.T) float64 {
	t := delta
	m.TransformVec2(&t)
	return math.Sqrt(vec2d.Dot(&delta, &t))
}
