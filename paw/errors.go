package paw

import "errors"

var (
	// ErrDimensionMismatch reports channel or grid arrays whose lengths
	// disagree with the potential's radial grid.
	ErrDimensionMismatch = errors.New("paw: dimension mismatch")

	// ErrSingularSystem reports a degenerate 2x2 system while solving for
	// the compensation-charge coefficients.
	ErrSingularSystem = errors.New("paw: singular compensation-charge system")

	// ErrQuadratureNonconvergence reports that the Gauss-Legendre
	// quadrature for the compensation-charge moment failed to settle
	// within the configured maximum order.
	ErrQuadratureNonconvergence = errors.New("paw: quadrature did not converge")
)
