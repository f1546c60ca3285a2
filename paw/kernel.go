package paw

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gammapoint/pawcoul/radial"
)

// coulombKernels builds, for each multipole 0 <= l <= lmax, the radial
// Coulomb kernel matrix
//
//	K_l(i, j) = min(r_i, r_j)^l / max(r_i, r_j)^{l+1}
//
// from the multipole expansion of 1/|r-r'|. The 4π/(2l+1) prefactor is
// applied at assembly time, not here.
func coulombKernels(g *radial.Grid, lmax int) []*mat.Dense {
	n := g.N()
	ks := make([]*mat.Dense, lmax+1)
	for l := range ks {
		ks[l] = mat.NewDense(n, n, nil)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			lo, hi := g.R[i], g.R[j]
			ratio := lo / hi
			v := 1 / hi
			for l := 0; l <= lmax; l++ {
				ks[l].Set(i, j, v)
				ks[l].Set(j, i, v)
				v *= ratio
			}
		}
	}
	return ks
}
