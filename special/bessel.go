// Package special provides spherical Bessel functions, their derivatives,
// and their zeros. These are the building blocks of the compensation
// charges used in the augmentation-sphere corrections.
package special

import "math"

// SphericalBesselJ returns j_l(x), the spherical Bessel function of the
// first kind of order l.
//
// Small arguments use the ascending power series. Once x exceeds the
// order, the value follows from upward recurrence on j_0 and j_1, which
// is stable in that regime.
func SphericalBesselJ(l int, x float64) float64 {
	if l < 0 {
		panic("special: negative spherical Bessel order")
	}
	if x == 0 {
		if l == 0 {
			return 1
		}
		return 0
	}
	if x < float64(l)+1 {
		return besselSeries(l, x)
	}

	j0 := math.Sin(x) / x
	if l == 0 {
		return j0
	}
	j1 := j0/x - math.Cos(x)/x
	if l == 1 {
		return j1
	}
	jm, j := j0, j1
	for n := 1; n < l; n++ {
		jm, j = j, float64(2*n+1)/x*j-jm
	}
	return j
}

// SphericalBesselJDeriv returns d/dx j_l(x) via the recurrence
// j_l' = j_{l-1} - (l+1)/x j_l, with j_0' = -j_1.
func SphericalBesselJDeriv(l int, x float64) float64 {
	if x == 0 {
		if l == 1 {
			return 1.0 / 3.0
		}
		return 0
	}
	if l == 0 {
		return -SphericalBesselJ(1, x)
	}
	return SphericalBesselJ(l-1, x) - float64(l+1)/x*SphericalBesselJ(l, x)
}

// besselSeries sums the ascending series
//
//	j_l(x) = x^l / (2l+1)!! * sum_k (-x^2/2)^k / (k! (2l+3)(2l+5)...(2l+2k+1))
//
// which converges quickly for x below the order.
func besselSeries(l int, x float64) float64 {
	term := math.Pow(x, float64(l)) / doubleFactorial(2*l+1)
	sum := term
	mh := -0.5 * x * x
	for k := 1; k <= 200; k++ {
		term *= mh / (float64(k) * float64(2*l+2*k+1))
		sum += term
		if math.Abs(term) < 1e-17*math.Abs(sum) {
			break
		}
	}
	return sum
}

func doubleFactorial(n int) float64 {
	f := 1.0
	for ; n > 1; n -= 2 {
		f *= float64(n)
	}
	return f
}
