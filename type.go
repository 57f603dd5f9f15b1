package matern

import "errors"

var (
	// ErrInvalidParameter reports a caller-supplied parameter outside its
	// valid domain (grid size < 1, non-positive variance, range,
	// smoothness or anisotropy ratio).
	ErrInvalidParameter = errors.New("matern: invalid parameter")

	// ErrNotPositiveDefinite reports a covariance matrix that failed
	// Cholesky factorization after regularization. The run is aborted; a
	// caller may retry with a larger nugget.
	ErrNotPositiveDefinite = errors.New("matern: covariance matrix not positive definite")
)

// ParamRange is a (start, end) pair for a parameter that varies linearly
// with the x-coordinate of a grid point. Equal endpoints make the
// parameter stationary.
type ParamRange [2]float64

// At returns the parameter value at x in [0,1].
func (r ParamRange) At(x float64) float64 {
	return r[0] + (r[1]-r[0])*x
}

// Stationary reports whether the parameter is constant across the field.
func (r ParamRange) Stationary() bool {
	return r[0] == r[1]
}

func (r ParamRange) positive() bool {
	return r[0] > 0 && r[1] > 0
}

// Constant builds a degenerate range holding the same value everywhere.
func Constant(v float64) ParamRange {
	return ParamRange{v, v}
}
