package paw

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// computeFourCenter fills the all-electron and pseudo four-center
// Coulomb tensors
//
//	(φ_i1 φ_i2 | φ_i3 φ_i4) = Σ_{L=(l,m)} 4π/(2l+1)
//	    · ∫∫ dr dr' f12(r) K_l(r, r') f34(r') · G12 · G34
//
// over the projector basis, using the r_</r_> multipole expansion of
// the Coulomb kernel.
func (s *Species) computeFourCenter() {
	ae := s.pairProducts(func(ch RadialChannel) []float64 { return ch.AE })
	ps := s.pairProducts(func(ch RadialChannel) []float64 { return ch.PS })
	s.FourCenterAE = s.assembleFourCenter(s.fourCenterRadial(ae))
	s.FourCenterPS = s.assembleFourCenter(s.fourCenterRadial(ps))
}

// pairProducts returns, for every ordered channel pair, the pointwise
// wave product with the Simpson weights folded in. Pairs related by
// swap share one backing slice.
func (s *Species) pairProducts(wave func(RadialChannel) []float64) [][]float64 {
	g := s.Pot.Grid
	n := g.N()
	nchan := len(s.Pot.Channels)
	pairs := make([][]float64, nchan*nchan)
	for n1 := 0; n1 < nchan; n1++ {
		w1 := wave(s.Pot.Channels[n1])
		for n2 := n1; n2 < nchan; n2++ {
			w2 := wave(s.Pot.Channels[n2])
			u := make([]float64, n)
			for i := 0; i < n; i++ {
				u[i] = g.W[i] * w1[i] * w2[i]
			}
			pairs[n1*nchan+n2] = u
			pairs[n2*nchan+n1] = u
		}
	}
	return pairs
}

// fourCenterRadial computes the nested double radial integral
//
//	radial[l][n1,n2,n3,n4] = Σ_j u34(j) · (K_l u12)(j)
//
// with u the weighted pair products. Work fans out over (l, n1); each
// goroutine writes a disjoint block.
func (s *Species) fourCenterRadial(pairs [][]float64) []*Tensor4 {
	n := s.Pot.Grid.N()
	nchan := len(s.Pot.Channels)
	numL := len(s.Comp)

	radial := make([]*Tensor4, numL)
	for l := range radial {
		radial[l] = NewTensor4(nchan, nchan, nchan, nchan)
	}

	guard := make(chan struct{}, s.cfg.Workers)
	var wg sync.WaitGroup
	for l := 0; l < numL; l++ {
		for n1 := 0; n1 < nchan; n1++ {
			wg.Add(1)
			guard <- struct{}{}
			go func(l, n1 int) {
				defer wg.Done()
				defer func() { <-guard }()
				v := mat.NewVecDense(n, nil)
				for n2 := 0; n2 < nchan; n2++ {
					v.MulVec(s.kernels[l], mat.NewVecDense(n, pairs[n1*nchan+n2]))
					vd := v.RawVector().Data
					for n3 := 0; n3 < nchan; n3++ {
						for n4 := n3; n4 < nchan; n4++ {
							dot := floats.Dot(pairs[n3*nchan+n4], vd)
							radial[l].Set(n1, n2, n3, n4, dot)
							radial[l].Set(n1, n2, n4, n3, dot)
						}
					}
				}
			}(l, n1)
		}
	}
	wg.Wait()
	return radial
}

// assembleFourCenter contracts the radial tensors with the angular
// Gaunt factors. Terms with |G12| below the cutoff are exact zeros of
// the selection rules and are skipped.
func (s *Species) assembleFourCenter(radial []*Tensor4) *Tensor4 {
	nb := len(s.Basis)
	out := NewTensor4(nb, nb, nb, nb)
	for _, a := range s.Angular {
		pref := 4 * math.Pi / float64(2*a.L+1)
		for i1, b1 := range s.Basis {
			for i2, b2 := range s.Basis {
				g12 := s.gaunt(b1.L, b1.M, b2.L, b2.M, a.L, a.M)
				if math.Abs(g12) < s.cfg.GauntCutoff {
					continue
				}
				for i3, b3 := range s.Basis {
					for i4, b4 := range s.Basis {
						g34 := s.gaunt(b3.L, b3.M, b4.L, b4.M, a.L, a.M)
						if g34 == 0 {
							continue
						}
						out.Add(i1, i2, i3, i4,
							pref*radial[a.L].At(b1.N, b2.N, b3.N, b4.N)*g12*g34)
					}
				}
			}
		}
	}
	return out
}
