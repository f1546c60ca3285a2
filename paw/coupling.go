package paw

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// computeCoupling fills the pseudo-wave/compensation-charge cross tensor
// and the compensation-charge self-interaction vector. Both radial
// integrals run strictly inside the augmentation sphere.
func (s *Species) computeCoupling() {
	s.computeCrossCoupling()
	s.computeSelfCoupling()
}

// computeCrossCoupling builds
//
//	(φ̃_i1 φ̃_i2 | g_L) = Σ_{(l,m)} 4π/(2l+1)
//	    · ∫∫ dr dr' f̃12(r) K_l(r, r') r'^2 g_{l3}(r')
//	    · G(l1,m1; l2,m2; l,m) · 2√π G(l3,m3; l,m; 0,0)
//
// where L = (l3, m3) labels the compensation channel and the monopole
// factor couples it to the kernel channel.
func (s *Species) computeCrossCoupling() {
	g := s.Pot.Grid
	rc := s.Pot.RCompIdx
	nchan := len(s.Pot.Channels)
	numL := len(s.Comp)

	// Weighted pseudo pair products and compensation charges, truncated
	// to the sphere.
	ps := make([][]float64, nchan*nchan)
	for n1 := 0; n1 < nchan; n1++ {
		w1 := s.Pot.Channels[n1].PS
		for n2 := n1; n2 < nchan; n2++ {
			w2 := s.Pot.Channels[n2].PS
			u := make([]float64, rc)
			for i := 0; i < rc; i++ {
				u[i] = g.W[i] * w1[i] * w2[i]
			}
			ps[n1*nchan+n2] = u
			ps[n2*nchan+n1] = u
		}
	}
	glw := make([][]float64, numL)
	for l3 := 0; l3 < numL; l3++ {
		u := make([]float64, rc)
		for i := 0; i < rc; i++ {
			u[i] = g.W[i] * g.R[i] * g.R[i] * s.Comp[l3].Radial[i]
		}
		glw[l3] = u
	}

	radialCross := NewTensor4(nchan, nchan, numL, numL) // [n1, n2, l3, l]
	v := mat.NewVecDense(rc, nil)
	for l := 0; l < numL; l++ {
		kl := s.kernels[l].Slice(0, rc, 0, rc)
		pref := 4 * math.Pi / float64(2*l+1)
		for n1 := 0; n1 < nchan; n1++ {
			for n2 := n1; n2 < nchan; n2++ {
				v.MulVec(kl, mat.NewVecDense(rc, ps[n1*nchan+n2]))
				vd := v.RawVector().Data
				for l3 := 0; l3 < numL; l3++ {
					val := pref * floats.Dot(glw[l3], vd)
					radialCross.Set(n1, n2, l3, l, val)
					radialCross.Set(n2, n1, l3, l, val)
				}
			}
		}
	}

	nb := len(s.Basis)
	s.CrossCoupling = NewTensor3(nb, nb, len(s.Angular))
	for _, lg := range s.Angular { // kernel channel (l, m)
		for i1, b1 := range s.Basis {
			for i2, b2 := range s.Basis {
				g12 := s.gaunt(b1.L, b1.M, b2.L, b2.M, lg.L, lg.M)
				if math.Abs(g12) < s.cfg.GauntCutoff {
					continue
				}
				for iL, a := range s.Angular { // compensation channel (l3, m3)
					g3 := s.gaunt(a.L, a.M, lg.L, lg.M, 0, 0)
					if g3 == 0 {
						continue
					}
					s.CrossCoupling.Add(i1, i2, iL,
						radialCross.At(b1.N, b2.N, a.L, lg.L)*2*math.SqrtPi*g12*g3)
				}
			}
		}
	}
}

// computeSelfCoupling builds the self-interaction
//
//	(g_L | g_L) = Σ_{(l',m')} 4π/(2l'+1)
//	    · ∫∫ dr dr' r^2 r'^2 g_l(r) K_{l'}(r, r') g_l(r')
//	    · G(l,m; l',m'; 0,0)^2
//
// indexed by the full multipole channel L = (l, m). The monopole Gaunt
// factor collapses the sum to l' = l, so the kernel integral is cached
// per (l, l') pair.
func (s *Species) computeSelfCoupling() {
	s.SelfCoupling = make([]float64, len(s.Angular))

	type lpair struct{ l, lp int }
	cache := make(map[lpair]float64)
	for iL, a := range s.Angular {
		for _, b := range s.Angular {
			gnt := s.gaunt(a.L, a.M, b.L, b.M, 0, 0)
			if math.Abs(gnt) < s.cfg.GauntCutoff {
				continue
			}
			key := lpair{a.L, b.L}
			r, ok := cache[key]
			if !ok {
				r = s.glKernelIntegral(a.L, b.L)
				cache[key] = r
			}
			s.SelfCoupling[iL] += 4 * math.Pi / float64(2*b.L+1) * r * gnt * gnt
		}
	}
}

// glKernelIntegral evaluates ∫∫ dr dr' r^2 r'^2 g_l(r) K_{l'}(r, r') g_l(r')
// inside the augmentation sphere.
func (s *Species) glKernelIntegral(l, lp int) float64 {
	g := s.Pot.Grid
	rc := s.Pot.RCompIdx
	gw := make([]float64, rc)
	for i := 0; i < rc; i++ {
		gw[i] = g.W[i] * g.R[i] * g.R[i] * s.Comp[l].Radial[i]
	}
	var v mat.VecDense
	v.MulVec(s.kernels[lp].Slice(0, rc, 0, rc), mat.NewVecDense(rc, gw))
	return floats.Dot(gw, v.RawVector().Data)
}
