package matern

import (
	"math"
)

const (
	besselEps   = 1e-16
	besselIters = 10000

	// crossover between the Temme series and the continued fraction
	besselXMin = 2.0

	eulerGamma = 0.5772156649015329
)

// besselK returns the modified Bessel function of the second kind K_nu(x)
// for real order nu >= 0 and x > 0. The order is split as nu = mu + nl
// with |mu| <= 1/2; K_mu and K_{mu+1} are seeded by Temme's series for
// x < 2 and by Steed's continued fraction otherwise, then recurred upward
// to nu. K underflows to 0 for large x, which is the correct limit here.
func besselK(nu, x float64) float64 {
	if x <= 0 || nu < 0 {
		return math.NaN()
	}

	nl := int(nu + 0.5)
	mu := nu - float64(nl)
	mu2 := mu * mu
	xi := 1 / x
	xi2 := 2 * xi

	var kmu, k1 float64
	if x < besselXMin {
		x2 := 0.5 * x
		pimu := math.Pi * mu
		fact := 1.0
		if math.Abs(pimu) >= besselEps {
			fact = pimu / math.Sin(pimu)
		}
		d := -math.Log(x2)
		e := mu * d
		fact2 := 1.0
		if math.Abs(e) >= besselEps {
			fact2 = math.Sinh(e) / e
		}
		gam1, gam2, gampl, gammi := temmeGamma(mu)
		ff := fact * (gam1*math.Cosh(e) + gam2*fact2*d)
		sum := ff
		e = math.Exp(e)
		p := 0.5 * e / gampl
		q := 0.5 / (e * gammi)
		c := 1.0
		d = x2 * x2
		sum1 := p
		for i := 1; i <= besselIters; i++ {
			fi := float64(i)
			ff = (fi*ff + p + q) / (fi*fi - mu2)
			c *= d / fi
			p /= fi - mu
			q /= fi + mu
			del := c * ff
			sum += del
			sum1 += c * (p - fi*ff)
			if math.Abs(del) < math.Abs(sum)*besselEps {
				break
			}
		}
		kmu = sum
		k1 = sum1 * xi2
	} else {
		b := 2 * (1 + x)
		d := 1 / b
		h := d
		delh := d
		q1 := 0.0
		q2 := 1.0
		a1 := 0.25 - mu2
		c := a1
		q := c
		a := -a1
		s := 1 + q*delh
		for i := 2; i <= besselIters; i++ {
			a -= 2 * float64(i-1)
			c = -a * c / float64(i)
			qnew := (q1 - b*q2) / a
			q1 = q2
			q2 = qnew
			q += c * qnew
			b += 2
			d = 1 / (b + a*d)
			delh = (b*d - 1) * delh
			h += delh
			dels := q * delh
			s += dels
			if math.Abs(dels/s) < besselEps {
				break
			}
		}
		h = a1 * h
		kmu = math.Sqrt(math.Pi/(2*x)) * math.Exp(-x) / s
		k1 = kmu * (mu + x + 0.5 - h) * xi
	}

	// K_{v+1} = (2v/x) K_v + K_{v-1}
	for l := 1; l <= nl; l++ {
		ktemp := (mu+float64(l))*xi2*k1 + kmu
		kmu = k1
		k1 = ktemp
	}
	return kmu
}

// temmeGamma returns the auxiliary quantities of Temme's series for
// |mu| <= 1/2:
//
//	gampl = 1/Gamma(1+mu)   gammi = 1/Gamma(1-mu)
//	gam1  = (gammi - gampl) / (2 mu)   gam2 = (gammi + gampl) / 2
//
// gam1 cancels badly as mu -> 0, where its even Taylor expansion around
// -eulerGamma is used instead.
func temmeGamma(mu float64) (gam1, gam2, gampl, gammi float64) {
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)
	if math.Abs(mu) < 1e-5 {
		gam1 = -eulerGamma + 0.04200263503409524*mu*mu
	} else {
		gam1 = (gammi - gampl) / (2 * mu)
	}
	gam2 = (gammi + gampl) / 2
	return gam1, gam2, gampl, gammi
}
