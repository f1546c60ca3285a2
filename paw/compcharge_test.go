package paw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammapoint/pawcoul/radial"
	"github.com/gammapoint/pawcoul/special"
)

// testGrid builds the uniform grid r_i = (i+1) h. With h = 0.0025 and
// 600 points the augmentation radius 1.0 lands exactly on index 399.
func testGrid(t *testing.T, h float64, n int) *radial.Grid {
	t.Helper()
	r := make([]float64, n)
	for i := range r {
		r[i] = float64(i+1) * h
	}
	g, err := radial.NewGrid(r)
	require.NoError(t, err)
	return g
}

// testPotential builds a potential with one channel per entry of ls.
// Pseudo waves are smooth envelopes r^{l+1} e^{-r^2} (the r·φ
// convention); all-electron waves deviate only inside the sphere and
// rejoin the pseudo waves with continuous value and slope at rcomp.
func testPotential(t *testing.T, ls ...int) *Potential {
	t.Helper()
	const (
		h     = 0.0025
		n     = 600
		rcomp = 1.0
	)
	g := testGrid(t, h, n)
	rcIdx := 399
	require.InDelta(t, rcomp, g.R[rcIdx], 1e-12)

	channels := make([]RadialChannel, len(ls))
	for c, l := range ls {
		ae := make([]float64, n)
		ps := make([]float64, n)
		for i, r := range g.R {
			ps[i] = math.Pow(r, float64(l+1)) * math.Exp(-r*r)
			ae[i] = ps[i]
			if r < rcomp {
				tt := 1 - (r/rcomp)*(r/rcomp)
				ae[i] = ps[i] * (1 + 0.5*tt*tt)
			}
		}
		channels[c] = RadialChannel{L: l, AE: ae, PS: ps}
	}
	return &Potential{Grid: g, RComp: rcomp, RCompIdx: rcIdx, Channels: channels}
}

func TestCompChargeNormalization(t *testing.T) {
	pot := testPotential(t, 0, 1)
	gs, err := solveCompCharges(pot, 4, Config{}.withDefaults())
	require.NoError(t, err)

	g := pot.Grid
	for _, cc := range gs {
		assert.Less(t, cc.Q1, cc.Q2, "l=%d: wavevectors out of order", cc.L)

		// Grid moment ∫ g_l r^{l+2} dr must match the quadrature-enforced
		// normalization.
		f := make([]float64, g.N())
		for i, r := range g.R {
			f[i] = cc.Radial[i] * math.Pow(r, float64(cc.L+2))
		}
		assert.InDelta(t, 1.0, g.Integrate(f), 1e-6, "l=%d moment", cc.L)
	}
}

func TestCompChargeVanishesBeyondRComp(t *testing.T) {
	pot := testPotential(t, 0, 1)
	gs, err := solveCompCharges(pot, 2, Config{}.withDefaults())
	require.NoError(t, err)

	for _, cc := range gs {
		for i := pot.RCompIdx; i < pot.Grid.N(); i++ {
			assert.Zero(t, cc.Radial[i], "l=%d, i=%d", cc.L, i)
		}
		// The analytic value at rcomp vanishes because q1, q2 scale Bessel
		// zeros onto the boundary.
		scale := math.Abs(cc.A1) + math.Abs(cc.A2)
		bound := cc.A1*special.SphericalBesselJ(cc.L, cc.Q1*pot.RComp) +
			cc.A2*special.SphericalBesselJ(cc.L, cc.Q2*pot.RComp)
		assert.Less(t, math.Abs(bound), 1e-8*scale, "l=%d boundary value", cc.L)
	}
}

func TestCompChargeZeroSlopeAtRComp(t *testing.T) {
	pot := testPotential(t, 0)
	gs, err := solveCompCharges(pot, 3, Config{}.withDefaults())
	require.NoError(t, err)

	for _, cc := range gs {
		d1 := cc.A1 * cc.Q1 * special.SphericalBesselJDeriv(cc.L, cc.Q1*pot.RComp)
		d2 := cc.A2 * cc.Q2 * special.SphericalBesselJDeriv(cc.L, cc.Q2*pot.RComp)
		scale := math.Abs(d1) + math.Abs(d2)
		require.Greater(t, scale, 0.0)
		assert.Less(t, math.Abs(d1+d2), 1e-10*scale, "l=%d slope", cc.L)
	}
}

func TestMomentIntegralNonconvergence(t *testing.T) {
	// A cap below the first refinement order leaves nothing to compare,
	// so the quadrature can never be declared converged.
	cfg := Config{MaxQuadratureOrder: 4}.withDefaults()
	_, err := momentIntegral(0, math.Pi, 1.0, cfg)
	require.ErrorIs(t, err, ErrQuadratureNonconvergence)

	_, err = NewSpecies(testPotential(t, 0), Config{MaxQuadratureOrder: 4})
	require.ErrorIs(t, err, ErrQuadratureNonconvergence)
}
