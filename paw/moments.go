package paw

import (
	"gonum.org/v1/gonum/floats"
)

// computeMoments fills Delta with the multipole moments
//
//	Δ[L, i1, i2] = ∫ dr r^l (φ_n1 φ_n2 - φ̃_n1 φ̃_n2) · G(l1,m1; l2,m2; l,m).
//
// The radial part depends only on (l, n1, n2) and is computed once and
// reused across all m of a multipole. The wave difference vanishes
// outside the augmentation sphere, where pseudo and all-electron waves
// coincide.
func (s *Species) computeMoments() {
	g := s.Pot.Grid
	n := g.N()
	nchan := len(s.Pot.Channels)
	numL := len(s.Comp)

	diff := make([][]float64, nchan*nchan)
	for n1 := 0; n1 < nchan; n1++ {
		c1 := s.Pot.Channels[n1]
		for n2 := n1; n2 < nchan; n2++ {
			c2 := s.Pot.Channels[n2]
			d := make([]float64, n)
			for i := 0; i < n; i++ {
				d[i] = c1.AE[i]*c2.AE[i] - c1.PS[i]*c2.PS[i]
			}
			diff[n1*nchan+n2] = d
			diff[n2*nchan+n1] = d
		}
	}

	moment := NewTensor3(numL, nchan, nchan)
	wr := make([]float64, n)
	copy(wr, g.W)
	for l := 0; l < numL; l++ {
		if l > 0 {
			floats.Mul(wr, g.R)
		}
		for n1 := 0; n1 < nchan; n1++ {
			for n2 := n1; n2 < nchan; n2++ {
				v := floats.Dot(wr, diff[n1*nchan+n2])
				moment.Set(l, n1, n2, v)
				moment.Set(l, n2, n1, v)
			}
		}
	}

	nb := len(s.Basis)
	s.Delta = NewTensor3(len(s.Angular), nb, nb)
	for iL, a := range s.Angular {
		for i1, b1 := range s.Basis {
			for i2, b2 := range s.Basis {
				gnt := s.gaunt(b1.L, b1.M, b2.L, b2.M, a.L, a.M)
				if gnt == 0 {
					continue
				}
				s.Delta.Set(iL, i1, i2, moment.At(a.L, b1.N, b2.N)*gnt)
			}
		}
	}
}
