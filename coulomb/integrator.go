package coulomb

import (
	"fmt"
	"math/cmplx"

	"github.com/gammapoint/pawcoul/paw"
	"github.com/gammapoint/pawcoul/planewave"
)

// WavefunctionSource supplies the periodic-cell geometry and real-space
// band amplitudes. Implementations typically wrap a plane-wave
// wavefunction file reader.
type WavefunctionSource interface {
	// Dims returns the real-space FFT sampling dimensions.
	Dims() [3]int
	// ReciprocalBasis returns the reciprocal lattice rows in 1/Å,
	// without the 2π factor.
	ReciprocalBasis() [3][3]float64
	// Volume returns the cell volume in Å³.
	Volume() float64
	// Band returns the real-space amplitude of band n, flattened in C
	// order over Dims.
	Band(n int) ([]complex128, error)
}

// Overlapper supplies projector overlaps ⟨p̃_i|ψ̃_n⟩ for one band at one
// atom, ordered by the projector channels of that atom's species.
type Overlapper interface {
	Project(band, atom int) ([]complex128, error)
}

// Result splits a Coulomb integral into its additive parts, all in eV.
// Total = PlaneWave + PAW; the PAW part already carries the factor two
// standing in for its symmetry-equivalent mirror term.
type Result struct {
	Total     complex128
	PlaneWave complex128
	PAW       complex128
}

// Integrator evaluates two-electron Coulomb integrals
//
//	K(m,n,p,q) = (mn|pq)_pw + 2·Σ_a Σ_{i1..i4} β1·conj(β2)·ΔC_a·conj(β3)·β4
//
// for band quadruples, combining the smooth plane-wave sum with the
// per-atom PAW corrections of the crystal.
type Integrator struct {
	crystal *Crystal
	src     WavefunctionSource
	proj    Overlapper
	engine  *planewave.Engine
}

// NewIntegrator builds the reciprocal grid from the source geometry and
// wires the collaborators. A nil fft selects the default transform.
func NewIntegrator(src WavefunctionSource, crystal *Crystal, proj Overlapper, fft planewave.FFT3) (*Integrator, error) {
	grid, err := planewave.NewGrid(src.Dims(), src.ReciprocalBasis(), src.Volume())
	if err != nil {
		return nil, err
	}
	return &Integrator{
		crystal: crystal,
		src:     src,
		proj:    proj,
		engine:  planewave.NewEngine(grid, fft),
	}, nil
}

// Engine returns the plane-wave engine, for callers that want the
// smooth part alone.
func (it *Integrator) Engine() *planewave.Engine { return it.engine }

// Integrate evaluates K(m,n,p,q) and returns it with its plane-wave and
// PAW components.
func (it *Integrator) Integrate(m, n, p, q int) (Result, error) {
	pw, err := it.planeWave(m, n, p, q)
	if err != nil {
		return Result{}, err
	}
	pawPart, err := it.pawCorrection(m, n, p, q)
	if err != nil {
		return Result{}, err
	}
	pawPart *= 2
	return Result{Total: pw + pawPart, PlaneWave: pw, PAW: pawPart}, nil
}

func (it *Integrator) planeWave(m, n, p, q int) (complex128, error) {
	bands := make([][]complex128, 4)
	for i, b := range []int{m, n, p, q} {
		amp, err := it.src.Band(b)
		if err != nil {
			return 0, fmt.Errorf("band %d: %w", b, err)
		}
		bands[i] = amp
	}
	rhoMN, err := it.engine.PairDensity(bands[0], bands[1])
	if err != nil {
		return 0, err
	}
	rhoPQ, err := it.engine.PairDensity(bands[2], bands[3])
	if err != nil {
		return 0, err
	}
	return it.engine.Integral(rhoMN, rhoPQ)
}

// pawCorrection contracts the species correction tensor with the four
// projector-overlap vectors at each atom and sums over atoms. The
// returned value excludes the symmetry factor applied in Integrate.
func (it *Integrator) pawCorrection(m, n, p, q int) (complex128, error) {
	var sum complex128
	for a, is := range it.crystal.SpeciesOf {
		sp := it.crystal.Species[is]
		nb := sp.NumBasis()

		beta := make([][]complex128, 4)
		for i, b := range []int{m, n, p, q} {
			ov, err := it.proj.Project(b, a)
			if err != nil {
				return 0, fmt.Errorf("atom %d band %d: %w", a, b, err)
			}
			if len(ov) != nb {
				return 0, fmt.Errorf("atom %d band %d: %d overlaps for %d projector channels: %w",
					a, b, len(ov), nb, paw.ErrDimensionMismatch)
			}
			beta[i] = ov
		}

		dc := sp.Correction()
		for i1 := 0; i1 < nb; i1++ {
			p1 := beta[0][i1]
			for i2 := 0; i2 < nb; i2++ {
				p12 := p1 * cmplx.Conj(beta[1][i2])
				for i3 := 0; i3 < nb; i3++ {
					p123 := p12 * cmplx.Conj(beta[2][i3])
					for i4 := 0; i4 < nb; i4++ {
						sum += p123 * complex(dc.At(i1, i2, i3, i4), 0) * beta[3][i4]
					}
				}
			}
		}
	}
	return sum, nil
}
