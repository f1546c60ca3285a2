package planewave

import (
	"fmt"
	"math/cmplx"

	"github.com/gammapoint/pawcoul/physconst"
)

// Engine evaluates plane-wave Coulomb integrals for band pairs sampled
// on a shared grid. It is stateless beyond the grid and safe for
// concurrent use.
type Engine struct {
	grid *Grid
	fft  FFT3
}

// NewEngine pairs a reciprocal grid with a 3D FFT implementation. A nil
// fft selects GonumFFT3.
func NewEngine(grid *Grid, fft FFT3) *Engine {
	if fft == nil {
		fft = GonumFFT3
	}
	return &Engine{grid: grid, fft: fft}
}

// Grid returns the engine's reciprocal grid.
func (e *Engine) Grid() *Grid { return e.grid }

// PairDensity returns the reciprocal-space pair density
//
//	ρ_mn(G) = FFT[conj(ψ_m)·ψ_n](G)
//
// for two real-space band amplitudes on the grid.
func (e *Engine) PairDensity(psiM, psiN []complex128) ([]complex128, error) {
	if len(psiM) != e.grid.Len() || len(psiN) != e.grid.Len() {
		return nil, fmt.Errorf("band amplitudes %d/%d on grid of %d points: %w",
			len(psiM), len(psiN), e.grid.Len(), ErrDimensionMismatch)
	}
	s := make([]complex128, len(psiM))
	for i := range s {
		s[i] = cmplx.Conj(psiM[i]) * psiN[i]
	}
	return e.fft(s, e.grid.N), nil
}

// Integral performs the reciprocal-space Coulomb sum
//
//	(mn|pq) = Σ_{G≠0} conj(ρ_mn(G)) ρ_pq(G) / |G|²
//
// scaled to eV. The divergent G = 0 term cancels against the
// compensating background and is excluded.
func (e *Engine) Integral(rhoMN, rhoPQ []complex128) (complex128, error) {
	if len(rhoMN) != e.grid.Len() || len(rhoPQ) != e.grid.Len() {
		return 0, fmt.Errorf("pair densities %d/%d on grid of %d points: %w",
			len(rhoMN), len(rhoPQ), e.grid.Len(), ErrDimensionMismatch)
	}
	var sum complex128
	for i := 1; i < len(rhoMN); i++ {
		sum += cmplx.Conj(rhoMN[i]) * rhoPQ[i] * complex(1/e.grid.GSq[i], 0)
	}
	scale := physconst.EDEPS / e.grid.Omega / (physconst.TPI * physconst.TPI)
	return sum * complex(scale, 0), nil
}
