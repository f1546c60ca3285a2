// Package radial provides the radial sampling grids used by the PAW
// machinery: strictly increasing sample points paired with composite
// Simpson quadrature weights, with full and range-restricted weighted
// integration.
package radial

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrTooFewPoints indicates a grid with fewer than three samples.
	ErrTooFewPoints = errors.New("radial: grid needs at least three points")
	// ErrNonMonotonic indicates sample points that are not strictly increasing.
	ErrNonMonotonic = errors.New("radial: grid points must be strictly increasing")
	// ErrLengthMismatch indicates arrays whose length differs from the grid size.
	ErrLengthMismatch = errors.New("radial: array length does not match grid size")
)

// Grid is a radial sampling grid. R holds the sample points, W the matching
// composite Simpson weights, so that Integrate(f) = sum_i W[i]*f[i]
// approximates the integral of f over [R[0], R[n-1]]. Immutable after
// construction.
type Grid struct {
	R []float64
	W []float64
}

// NewGrid builds a grid from sample points, deriving non-uniform composite
// Simpson weights. Grids with an even number of points get the three-point
// end correction on the final interval.
func NewGrid(r []float64) (*Grid, error) {
	if len(r) < 3 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(r); i++ {
		if r[i] <= r[i-1] {
			return nil, ErrNonMonotonic
		}
	}
	return &Grid{R: r, W: simpsonWeights(r)}, nil
}

// NewGridWithWeights builds a grid from externally supplied quadrature
// weights, as read from a PAW dataset.
func NewGridWithWeights(r, w []float64) (*Grid, error) {
	if len(r) < 3 {
		return nil, ErrTooFewPoints
	}
	if len(w) != len(r) {
		return nil, ErrLengthMismatch
	}
	for i := 1; i < len(r); i++ {
		if r[i] <= r[i-1] {
			return nil, ErrNonMonotonic
		}
	}
	return &Grid{R: r, W: w}, nil
}

// N returns the number of grid points.
func (g *Grid) N() int { return len(g.R) }

// Integrate returns the Simpson-weighted sum over the full grid.
func (g *Grid) Integrate(f []float64) float64 {
	return floats.Dot(g.W, f)
}

// IntegrateTo returns the Simpson-weighted sum truncated to the first n
// points. Used to restrict radial integrals to the augmentation sphere.
func (g *Grid) IntegrateTo(n int, f []float64) float64 {
	return floats.Dot(g.W[:n], f[:n])
}

// simpsonWeights computes composite Simpson weights on a non-uniform grid.
// Interval pairs (x0,x1,x2) contribute the quadratic-interpolant weights
//
//	w0 += T/6 * (2 - h1/h0)
//	w1 += T^3 / (6*h0*h1)
//	w2 += T/6 * (2 - h0/h1)
//
// with h0 = x1-x0, h1 = x2-x1, T = h0+h1. An odd interval count is closed
// with the quadratic through the last three points integrated over the last
// interval only.
func simpsonWeights(r []float64) []float64 {
	n := len(r)
	w := make([]float64, n)
	nint := n - 1

	pairs := nint / 2
	for k := 0; k < pairs; k++ {
		i := 2 * k
		h0 := r[i+1] - r[i]
		h1 := r[i+2] - r[i+1]
		t := h0 + h1
		w[i] += t / 6 * (2 - h1/h0)
		w[i+1] += t * t * t / (6 * h0 * h1)
		w[i+2] += t / 6 * (2 - h0/h1)
	}

	if nint%2 == 1 {
		h0 := r[n-2] - r[n-3]
		h1 := r[n-1] - r[n-2]
		w[n-1] += (2*h1*h1 + 3*h0*h1) / (6 * (h0 + h1))
		w[n-2] += (h1*h1 + 3*h0*h1) / (6 * h0)
		w[n-3] -= h1 * h1 * h1 / (6 * h0 * (h0 + h1))
	}

	return w
}
