package planewave

import "errors"

// ErrDimensionMismatch reports band or density arrays whose lengths do
// not match the FFT grid.
var ErrDimensionMismatch = errors.New("planewave: dimension mismatch")
