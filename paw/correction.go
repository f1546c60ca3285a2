package paw

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gammapoint/pawcoul/physconst"
)

// assembleCorrection combines the four-center, multipole, and coupling
// tensors into the final correction
//
//	ΔC[i1,i2,i3,i4] = ½ (AE - PS)[i1,i2,i3,i4]
//	    - Σ_L { ½ Δ[L,i1,i2] X[i1,i2,L] + ½ Δ[L,i3,i4] X[i3,i4,L]
//	            + Δ[L,i1,i2] Π[L] Δ[L,i3,i4] }
//
// with X the cross coupling and Π the self coupling, then converts from
// e²/Å to eV via the Bohr radius and the Hartree energy.
func (s *Species) assembleCorrection() {
	nb := len(s.Basis)
	nang := len(s.Angular)

	// Σ_L Δ[L,i,j] X[i,j,L] depends only on the pair.
	pairCross := mat.NewDense(nb, nb, nil)
	for i1 := 0; i1 < nb; i1++ {
		for i2 := 0; i2 < nb; i2++ {
			sum := 0.0
			for iL := 0; iL < nang; iL++ {
				sum += s.Delta.At(iL, i1, i2) * s.CrossCoupling.At(i1, i2, iL)
			}
			pairCross.Set(i1, i2, sum)
		}
	}

	toEV := physconst.AUTOA * physconst.HARTREE
	s.DeltaC = NewTensor4(nb, nb, nb, nb)
	for i1 := 0; i1 < nb; i1++ {
		for i2 := 0; i2 < nb; i2++ {
			for i3 := 0; i3 < nb; i3++ {
				for i4 := 0; i4 < nb; i4++ {
					first := 0.5 * (s.FourCenterAE.At(i1, i2, i3, i4) -
						s.FourCenterPS.At(i1, i2, i3, i4))
					second := 0.5 * (pairCross.At(i1, i2) + pairCross.At(i3, i4))
					for iL := 0; iL < nang; iL++ {
						second += s.Delta.At(iL, i1, i2) * s.SelfCoupling[iL] *
							s.Delta.At(iL, i3, i4)
					}
					s.DeltaC.Set(i1, i2, i3, i4, (first-second)*toEV)
				}
			}
		}
	}
}
