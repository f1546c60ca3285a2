package special

import (
	"errors"
	"fmt"
)

// MaxBracketSteps bounds the unit-step scan that brackets consecutive
// zeros of j_l before bisection.
const MaxBracketSteps = 240

// ErrRootNotFound reports that the bracketing scan exhausted
// MaxBracketSteps without isolating the requested zero.
var ErrRootNotFound = errors.New("special: bessel zero not bracketed")

// BesselZeros returns the first n positive zeros of j_l in increasing
// order. Each zero is bracketed by scanning unit intervals upward from
// x = 1 and refined by bisection until the bracket is narrower than 1e-10.
func BesselZeros(l, n int) ([]float64, error) {
	zeros := make([]float64, 0, n)
	lo := 1.0
	flo := SphericalBesselJ(l, lo)
	for steps := 0; len(zeros) < n; {
		if steps++; steps > MaxBracketSteps {
			return nil, fmt.Errorf("zero %d of j_%d: %w", len(zeros)+1, l, ErrRootNotFound)
		}
		hi := lo + 1
		fhi := SphericalBesselJ(l, hi)
		if flo*fhi < 0 {
			zeros = append(zeros, bisectBessel(l, lo, hi, flo))
		}
		lo, flo = hi, fhi
	}
	return zeros, nil
}

func bisectBessel(l int, lo, hi, flo float64) float64 {
	for hi-lo > 1e-10 {
		mid := 0.5 * (lo + hi)
		fmid := SphericalBesselJ(l, mid)
		if flo*fmid <= 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return 0.5 * (lo + hi)
}
