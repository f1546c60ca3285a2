package coulomb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammapoint/pawcoul/paw"
	"github.com/gammapoint/pawcoul/radial"
)

// testPotential builds a minimal potential with one channel per entry
// of ls. Pseudo waves are smooth envelopes in the r·φ convention; the
// all-electron waves deviate from them inside the augmentation sphere
// only.
func testPotential(t *testing.T, ls ...int) *paw.Potential {
	t.Helper()
	const (
		h     = 0.003
		n     = 500
		rcomp = 1.2
	)
	r := make([]float64, n)
	for i := range r {
		r[i] = float64(i+1) * h
	}
	g, err := radial.NewGrid(r)
	require.NoError(t, err)
	rcIdx := 399
	require.InDelta(t, rcomp, g.R[rcIdx], 1e-12)

	channels := make([]paw.RadialChannel, len(ls))
	for c, l := range ls {
		ae := make([]float64, n)
		ps := make([]float64, n)
		for i, r := range g.R {
			ps[i] = math.Pow(r, float64(l+1)) * math.Exp(-r*r)
			ae[i] = ps[i]
			if r < rcomp {
				tt := 1 - (r/rcomp)*(r/rcomp)
				ae[i] = ps[i] * (1 + 0.4*tt*tt)
			}
		}
		channels[c] = paw.RadialChannel{L: l, AE: ae, PS: ps}
	}
	return &paw.Potential{Grid: g, RComp: rcomp, RCompIdx: rcIdx, Channels: channels}
}

func TestNewCrystalValidation(t *testing.T) {
	sp, err := paw.NewSpecies(testPotential(t, 0), paw.Config{})
	require.NoError(t, err)

	_, err = NewCrystal(nil, nil)
	assert.ErrorIs(t, err, paw.ErrDimensionMismatch)

	_, err = NewCrystal([]*paw.Species{sp}, []int{0, 1})
	assert.ErrorIs(t, err, paw.ErrDimensionMismatch)

	_, err = NewCrystal([]*paw.Species{sp}, []int{-1})
	assert.ErrorIs(t, err, paw.ErrDimensionMismatch)

	c, err := NewCrystal([]*paw.Species{sp}, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Len(t, c.SpeciesOf, 3)
}

func TestNewCrystalFromPotentials(t *testing.T) {
	pots := []*paw.Potential{testPotential(t, 0), testPotential(t, 0, 1)}
	c, err := NewCrystalFromPotentials(pots, []int{0, 1, 1}, paw.Config{})
	require.NoError(t, err)
	require.Len(t, c.Species, 2)
	assert.Equal(t, 1, c.Species[0].NumBasis())
	assert.Equal(t, 4, c.Species[1].NumBasis())
	assert.Equal(t, []int{0, 1, 1}, c.SpeciesOf)
}

func TestNewCrystalFromPotentialsPropagatesError(t *testing.T) {
	good := testPotential(t, 0)
	bad := testPotential(t, 0)
	bad.Channels[0].AE = bad.Channels[0].AE[:10]

	_, err := NewCrystalFromPotentials([]*paw.Potential{good, bad}, []int{0, 1}, paw.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, paw.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "species 1")
}
