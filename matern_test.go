package matern

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCovarianceZeroDistance(t *testing.T) {
	a := assert.New(t)

	for _, variance := range []float64{0.25, 1, 3.5} {
		for _, smoothness := range []float64{0.5, 1, 1.5, 2.7} {
			cov, err := Covariance(0, variance, 0.2, smoothness)
			a.NoError(err)
			a.Equal(variance, cov)
		}
	}
}

func TestCovarianceExponentialForm(t *testing.T) {
	a := assert.New(t)

	// smoothness 1/2 collapses to v·exp(-h/range)
	variance, rangeParam := 2.0, 0.3
	for h := 0.05; h < 1; h += 0.1 {
		cov, err := Covariance(h, variance, rangeParam, 0.5)
		a.NoError(err)
		a.InEpsilon(variance*math.Exp(-h/rangeParam), cov, 1e-10, "h=%v", h)
	}
}

func TestCovarianceMatern32Form(t *testing.T) {
	a := assert.New(t)

	// smoothness 3/2 collapses to v·(1+√3 h/range)·exp(-√3 h/range)
	variance, rangeParam := 1.0, 0.2
	for h := 0.05; h < 1; h += 0.1 {
		s := math.Sqrt(3) * h / rangeParam
		cov, err := Covariance(h, variance, rangeParam, 1.5)
		a.NoError(err)
		a.InEpsilon(variance*(1+s)*math.Exp(-s), cov, 1e-10, "h=%v", h)
	}
}

func TestCovarianceDecreasing(t *testing.T) {
	a := assert.New(t)

	prev := 1.0
	for h := 0.01; h < 2; h += 0.01 {
		cov, err := Covariance(h, 1, 0.2, 1.2)
		a.NoError(err)
		a.Less(cov, prev)
		prev = cov
	}
}

func TestCovarianceInvalidParams(t *testing.T) {
	a := assert.New(t)

	cases := []struct{ variance, rangeParam, smoothness float64 }{
		{0, 0.2, 1.5},
		{-1, 0.2, 1.5},
		{1, 0, 1.5},
		{1, -0.2, 1.5},
		{1, 0.2, 0},
		{1, 0.2, -1.5},
	}
	for _, c := range cases {
		_, err := Covariance(0.1, c.variance, c.rangeParam, c.smoothness)
		a.True(errors.Is(err, ErrInvalidParameter), "%+v", c)

		_, err = CovarianceSlice([]float64{0.1}, c.variance, c.rangeParam, c.smoothness)
		a.True(errors.Is(err, ErrInvalidParameter), "%+v", c)
	}
}

func TestCovarianceSlice(t *testing.T) {
	a := assert.New(t)

	hs := []float64{0, 0.1, 0, 0.5, 2}
	cov, err := CovarianceSlice(hs, 1.5, 0.2, 1.5)
	a.NoError(err)
	a.Len(cov, len(hs))

	// the zero-distance entries must not trip the Bessel branch
	a.Equal(1.5, cov[0])
	a.Equal(1.5, cov[2])

	for i, h := range hs {
		want, err := Covariance(h, 1.5, 0.2, 1.5)
		a.NoError(err)
		a.Equal(want, cov[i])
	}
}
