package matern

import (
	"fmt"
	"math"
)

// Covariance returns the Matérn covariance at distance h for the given
// variance, correlation range and smoothness. All three parameters must
// be positive. Negative distances are a caller contract violation and
// are not checked.
func Covariance(h, variance, rangeParam, smoothness float64) (float64, error) {
	if err := checkKernelParams(variance, rangeParam, smoothness); err != nil {
		return 0, err
	}
	return covariance(h, variance, rangeParam, smoothness), nil
}

// CovarianceSlice evaluates the Matérn covariance at each distance in hs.
func CovarianceSlice(hs []float64, variance, rangeParam, smoothness float64) ([]float64, error) {
	if err := checkKernelParams(variance, rangeParam, smoothness); err != nil {
		return nil, err
	}
	cov := make([]float64, len(hs))
	for i, h := range hs {
		cov[i] = covariance(h, variance, rangeParam, smoothness)
	}
	return cov, nil
}

func checkKernelParams(variance, rangeParam, smoothness float64) error {
	if variance <= 0 {
		return fmt.Errorf("%w: variance %v, must be > 0", ErrInvalidParameter, variance)
	}
	if rangeParam <= 0 {
		return fmt.Errorf("%w: range %v, must be > 0", ErrInvalidParameter, rangeParam)
	}
	if smoothness <= 0 {
		return fmt.Errorf("%w: smoothness %v, must be > 0", ErrInvalidParameter, smoothness)
	}
	return nil
}

// covariance is the unchecked kernel. The zero-distance branch returns
// the variance directly: the (c·h)^nu · K_nu(c·h) product is an
// indeterminate 0·inf there and unstable for h near zero.
func covariance(h, variance, rangeParam, smoothness float64) float64 {
	if h == 0 {
		return variance
	}
	scaled := math.Sqrt(2*smoothness) * h / rangeParam
	norm := math.Exp2(1-smoothness) / math.Gamma(smoothness)
	return variance * norm * math.Pow(scaled, smoothness) * besselK(smoothness, scaled)
}
