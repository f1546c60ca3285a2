// Package coulomb assembles full two-electron Coulomb integrals for
// quadruples of bands: the smooth plane-wave reciprocal sum plus the
// per-atom PAW correction contracted over projector overlaps.
package coulomb

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gammapoint/pawcoul/paw"
)

// Crystal maps atoms to their PAW species. Species carry the
// precomputed correction tensors; SpeciesOf[a] selects the species of
// atom a. Both fields are immutable after construction.
type Crystal struct {
	Species   []*paw.Species
	SpeciesOf []int
}

// NewCrystal validates the atom-to-species mapping. Every atom must
// reference a species in range; an empty species list is rejected.
func NewCrystal(species []*paw.Species, speciesOf []int) (*Crystal, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("crystal has no species: %w", paw.ErrDimensionMismatch)
	}
	for a, is := range speciesOf {
		if is < 0 || is >= len(species) {
			return nil, fmt.Errorf("atom %d references species %d of %d: %w",
				a, is, len(species), paw.ErrDimensionMismatch)
		}
	}
	return &Crystal{Species: species, SpeciesOf: speciesOf}, nil
}

// NewCrystalFromPotentials constructs one species per potential and
// wires the atom mapping. Species construction dominates setup time and
// is independent per potential, so potentials are processed in
// parallel.
func NewCrystalFromPotentials(pots []*paw.Potential, speciesOf []int, cfg paw.Config) (*Crystal, error) {
	species := make([]*paw.Species, len(pots))
	var g errgroup.Group
	for i, pot := range pots {
		i, pot := i, pot
		g.Go(func() error {
			sp, err := paw.NewSpecies(pot, cfg)
			if err != nil {
				return fmt.Errorf("species %d: %w", i, err)
			}
			species[i] = sp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewCrystal(species, speciesOf)
}
