package paw

import (
	"runtime"

	"github.com/gammapoint/pawcoul/gaunt"
)

// GauntFunc evaluates the Gaunt coefficient of three real spherical
// harmonics. It must obey the standard triangle and parity selection
// rules.
type GauntFunc func(l1, m1, l2, m2, l3, m3 int) float64

// Config holds the numerical knobs for species construction. The zero
// value selects the defaults below.
type Config struct {
	// Gaunt supplies the angular coupling coefficients. Nil selects a
	// fresh memoizing gaunt.Table.
	Gaunt GauntFunc

	// GauntCutoff prunes angular terms whose Gaunt coefficient magnitude
	// falls below it. Such values are exact zeros of the selection rules,
	// so pruning is sparsity, not approximation.
	GauntCutoff float64

	// QuadratureTol is the relative agreement required between two
	// consecutive Gauss-Legendre orders of the compensation-charge
	// moment integral.
	QuadratureTol float64

	// MaxQuadratureOrder caps the Gauss-Legendre order tried before the
	// moment integral is reported as nonconvergent.
	MaxQuadratureOrder int

	// Workers bounds the goroutines used for the four-center radial
	// integrals. Zero or negative means GOMAXPROCS.
	Workers int
}

const (
	defaultGauntCutoff        = 1e-6
	defaultQuadratureTol      = 1e-10
	defaultMaxQuadratureOrder = 32
)

func (c Config) withDefaults() Config {
	if c.Gaunt == nil {
		c.Gaunt = gaunt.NewTable().Real
	}
	if c.GauntCutoff == 0 {
		c.GauntCutoff = defaultGauntCutoff
	}
	if c.QuadratureTol == 0 {
		c.QuadratureTol = defaultQuadratureTol
	}
	if c.MaxQuadratureOrder == 0 {
		c.MaxQuadratureOrder = defaultMaxQuadratureOrder
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}
