package paw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/gammapoint/pawcoul/special"
)

// CompCharge is one compensation-charge channel
//
//	g_l(r) = a1 j_l(q1 r) + a2 j_l(q2 r),
//
// built so that it vanishes at rcomp term by term, with zero total slope
// there, and its multipole moment over the augmentation sphere is one.
type CompCharge struct {
	L      int
	Q1, Q2 float64   // wavevectors, zeros of j_l scaled by 1/rcomp
	A1, A2 float64   // mixing coefficients
	Radial []float64 // g_l on the grid, identically zero from RCompIdx on
}

// solveCompCharges builds g_l for every multipole 0 <= l <= lmax.
func solveCompCharges(pot *Potential, lmax int, cfg Config) ([]CompCharge, error) {
	gs := make([]CompCharge, lmax+1)
	for l := 0; l <= lmax; l++ {
		g, err := solveCompCharge(pot, l, cfg)
		if err != nil {
			return nil, fmt.Errorf("compensation charge l=%d: %w", l, err)
		}
		gs[l] = g
	}
	return gs, nil
}

func solveCompCharge(pot *Potential, l int, cfg Config) (CompCharge, error) {
	roots, err := special.BesselZeros(l, 2)
	if err != nil {
		return CompCharge{}, err
	}
	rc := pot.RComp
	q1, q2 := roots[0]/rc, roots[1]/rc

	m1, err := momentIntegral(l, q1, rc, cfg)
	if err != nil {
		return CompCharge{}, err
	}
	m2, err := momentIntegral(l, q2, rc, cfg)
	if err != nil {
		return CompCharge{}, err
	}

	// Row 1: zero slope of the mixture at rcomp.
	// Row 2: unit multipole moment of the mixture.
	a := mat.NewDense(2, 2, []float64{
		q1 * special.SphericalBesselJDeriv(l, q1*rc),
		q2 * special.SphericalBesselJDeriv(l, q2*rc),
		m1, m2,
	})
	var coef mat.VecDense
	if err := coef.SolveVec(a, mat.NewVecDense(2, []float64{0, 1})); err != nil {
		return CompCharge{}, fmt.Errorf("coefficients for l=%d: %w", l, ErrSingularSystem)
	}

	g := CompCharge{
		L:  l,
		Q1: q1, Q2: q2,
		A1: coef.AtVec(0), A2: coef.AtVec(1),
		Radial: make([]float64, pot.Grid.N()),
	}
	for i := 0; i < pot.RCompIdx; i++ {
		r := pot.Grid.R[i]
		g.Radial[i] = g.A1*special.SphericalBesselJ(l, q1*r) +
			g.A2*special.SphericalBesselJ(l, q2*r)
	}
	return g, nil
}

// momentIntegral evaluates the moment
//
//	∫_0^R j_l(q r) r^{l+2} dr
//
// by Gauss-Legendre quadrature, doubling the order until two consecutive
// estimates agree to the configured tolerance.
func momentIntegral(l int, q, R float64, cfg Config) (float64, error) {
	f := func(r float64) float64 {
		return special.SphericalBesselJ(l, q*r) * math.Pow(r, float64(l+2))
	}
	prev := quad.Fixed(f, 0, R, 4, quad.Legendre{}, 0)
	for n := 8; n <= cfg.MaxQuadratureOrder; n *= 2 {
		cur := quad.Fixed(f, 0, R, n, quad.Legendre{}, 0)
		if math.Abs(cur-prev) <= cfg.QuadratureTol*math.Max(1, math.Abs(cur)) {
			return cur, nil
		}
		prev = cur
	}
	return 0, fmt.Errorf("moment of j_%d over [0,%g]: %w", l, R, ErrQuadratureNonconvergence)
}
