// Package paw evaluates the augmentation-sphere correction to
// two-electron Coulomb integrals in the projector-augmented-wave
// formalism. A Species is built once per PAW dataset: it solves the
// compensation charges, computes the multipole moment, four-center, and
// compensation-coupling tensors, and assembles the correction tensor ΔC
// that callers contract with projector overlaps for every band
// quadruple.
package paw

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Species holds every per-dataset tensor needed to evaluate the
// augmentation-sphere correction. All fields are populated during
// construction and immutable afterwards, so one Species serves any
// number of concurrent integral queries.
type Species struct {
	Pot *Potential

	// Index bookkeeping
	LMaxChan int            // largest channel angular momentum
	Basis    []BasisIndex   // projector basis (n, l, m)
	Angular  []AngularIndex // multipole channels (l, m), l <= 2*LMaxChan

	// Compensation charges, one per multipole l
	Comp []CompCharge

	// Correction tensors over the projector basis
	Delta         *Tensor3  // multipole moments Δ[L, i1, i2]
	FourCenterAE  *Tensor4  // all-electron (φ φ | φ φ)
	FourCenterPS  *Tensor4  // pseudo (φ̃ φ̃ | φ̃ φ̃)
	CrossCoupling *Tensor3  // (φ̃ φ̃ | g_L), indexed [i1, i2, L]
	SelfCoupling  []float64 // (g_L | g_L), indexed [L]
	DeltaC        *Tensor4  // final correction tensor, eV

	kernels []*mat.Dense // radial Coulomb kernels, one per multipole l
	cfg     Config
	gaunt   GauntFunc
}

// NewSpecies builds all per-species tensors eagerly. The returned
// Species is ready for correction queries; nothing is computed lazily
// afterwards.
func NewSpecies(pot *Potential, cfg Config) (*Species, error) {
	cfg = cfg.withDefaults()
	if err := pot.Validate(); err != nil {
		return nil, fmt.Errorf("potential: %w", err)
	}

	s := &Species{
		Pot:      pot,
		LMaxChan: pot.LMaxChannel(),
		Basis:    BasisIndices(pot.Channels),
		cfg:      cfg,
		gaunt:    cfg.Gaunt,
	}
	s.Angular = AngularIndices(2 * s.LMaxChan)

	var err error
	if s.Comp, err = solveCompCharges(pot, 2*s.LMaxChan, cfg); err != nil {
		return nil, err
	}
	s.kernels = coulombKernels(pot.Grid, 2*s.LMaxChan)

	s.computeMoments()
	s.computeFourCenter()
	s.computeCoupling()
	s.assembleCorrection()
	return s, nil
}

// NumBasis returns the size of the (n, l, m) projector basis, the extent
// of every axis of the correction tensor.
func (s *Species) NumBasis() int { return len(s.Basis) }

// Correction returns the assembled ΔC tensor in eV.
func (s *Species) Correction() *Tensor4 { return s.DeltaC }
