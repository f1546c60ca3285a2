// Package planewave evaluates the smooth plane-wave part of two-electron
// Coulomb integrals in reciprocal space: it enumerates the reciprocal
// lattice induced by an FFT sampling of the periodic cell, transforms
// pair densities with a 3D FFT, and performs the Coulomb sum over G ≠ 0.
package planewave

import "fmt"

// Grid describes the real-space FFT sampling of the periodic cell and
// the reciprocal lattice it induces. G-vectors are stored in 2π/Å units;
// the 2π is folded into the Coulomb scale factor.
type Grid struct {
	N     [3]int        // FFT dimensions
	B     [3][3]float64 // reciprocal basis rows, 1/Å, without the 2π
	Omega float64       // cell volume, Å³

	// Flattened over the grid in C order (z fastest), matching the FFT
	// output layout. Index 0 is G = 0.
	G   [][3]float64
	GSq []float64
}

// NewGrid enumerates the reciprocal lattice for FFT dims n, reciprocal
// basis b, and cell volume omega. Frequency indices past n/2 wrap to
// their negative counterparts.
func NewGrid(n [3]int, b [3][3]float64, omega float64) (*Grid, error) {
	for _, d := range n {
		if d < 1 {
			return nil, fmt.Errorf("FFT dims %v: %w", n, ErrDimensionMismatch)
		}
	}
	if omega <= 0 {
		return nil, fmt.Errorf("cell volume %v: %w", omega, ErrDimensionMismatch)
	}

	g := &Grid{
		N:     n,
		B:     b,
		Omega: omega,
		G:     make([][3]float64, 0, n[0]*n[1]*n[2]),
		GSq:   make([]float64, 0, n[0]*n[1]*n[2]),
	}
	fx := foldedFrequencies(n[0])
	fy := foldedFrequencies(n[1])
	fz := foldedFrequencies(n[2])
	for _, x := range fx {
		for _, y := range fy {
			for _, z := range fz {
				var v [3]float64
				for c := 0; c < 3; c++ {
					v[c] = x*b[0][c] + y*b[1][c] + z*b[2][c]
				}
				g.G = append(g.G, v)
				g.GSq = append(g.GSq, v[0]*v[0]+v[1]*v[1]+v[2]*v[2])
			}
		}
	}
	return g, nil
}

// Len returns the number of grid points.
func (g *Grid) Len() int { return g.N[0] * g.N[1] * g.N[2] }

// foldedFrequencies returns the FFT frequency indices 0..n-1 with
// indices at or past n/2+1 wrapped to their negative counterparts.
func foldedFrequencies(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		v := i
		if i >= n/2+1 {
			v = i - n
		}
		f[i] = float64(v)
	}
	return f
}
