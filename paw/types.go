package paw

import (
	"fmt"

	"github.com/gammapoint/pawcoul/radial"
)

// RadialChannel holds the paired partial waves of one projector channel.
// Wave arrays store r*phi(r) as PAW datasets tabulate them, so a product
// of two waves already carries the r^2 volume factor of the radial
// measure.
type RadialChannel struct {
	L  int       // orbital angular momentum
	AE []float64 // all-electron partial wave, one value per grid point
	PS []float64 // pseudo partial wave, one value per grid point
}

// Potential carries the radial data of one PAW dataset needed by the
// Coulomb correction. It is immutable after construction.
type Potential struct {
	Grid     *radial.Grid
	RComp    float64 // augmentation-sphere radius
	RCompIdx int     // first grid index at or beyond RComp
	Channels []RadialChannel
}

// Validate checks that the grid and channel arrays are mutually
// consistent. Violations are reported as ErrDimensionMismatch.
func (p *Potential) Validate() error {
	if p.Grid == nil || p.Grid.N() == 0 {
		return fmt.Errorf("no radial grid: %w", ErrDimensionMismatch)
	}
	n := p.Grid.N()
	if p.Grid.R[0] <= 0 {
		return fmt.Errorf("radial grid must start above the origin: %w", ErrDimensionMismatch)
	}
	if p.RComp <= 0 {
		return fmt.Errorf("augmentation radius %v: %w", p.RComp, ErrDimensionMismatch)
	}
	if p.RCompIdx <= 0 || p.RCompIdx > n {
		return fmt.Errorf("rcomp index %d outside grid of %d points: %w",
			p.RCompIdx, n, ErrDimensionMismatch)
	}
	if len(p.Channels) == 0 {
		return fmt.Errorf("no projector channels: %w", ErrDimensionMismatch)
	}
	for i, ch := range p.Channels {
		if ch.L < 0 {
			return fmt.Errorf("channel %d: negative l: %w", i, ErrDimensionMismatch)
		}
		if len(ch.AE) != n || len(ch.PS) != n {
			return fmt.Errorf("channel %d: wave lengths %d/%d on grid of %d points: %w",
				i, len(ch.AE), len(ch.PS), n, ErrDimensionMismatch)
		}
	}
	return nil
}

// LMaxChannel returns the largest channel angular momentum.
func (p *Potential) LMaxChannel() int {
	lmax := 0
	for _, ch := range p.Channels {
		if ch.L > lmax {
			lmax = ch.L
		}
	}
	return lmax
}

// AngularIndex labels one multipole channel L = (l, m).
type AngularIndex struct {
	L, M int
}

// BasisIndex labels one projector basis function. N is the radial
// channel, (L, M) its angular part.
type BasisIndex struct {
	N, L, M int
}

// AngularIndices enumerates (l, m) for 0 <= l <= lmax in lexicographic
// order, the ordering shared by every tensor indexed over multipoles.
func AngularIndices(lmax int) []AngularIndex {
	idx := make([]AngularIndex, 0, (lmax+1)*(lmax+1))
	for l := 0; l <= lmax; l++ {
		for m := -l; m <= l; m++ {
			idx = append(idx, AngularIndex{L: l, M: m})
		}
	}
	return idx
}

// BasisIndices expands the radial channels into the (n, l, m) projector
// basis, channels in dataset order, m running -l..l within each.
func BasisIndices(channels []RadialChannel) []BasisIndex {
	var idx []BasisIndex
	for n, ch := range channels {
		for m := -ch.L; m <= ch.L; m++ {
			idx = append(idx, BasisIndex{N: n, L: ch.L, M: m})
		}
	}
	return idx
}
