// Package physconst defines the physical constants shared by the PAW and
// plane-wave Coulomb machinery. Values follow CODATA; the derived Coulomb
// prefactors keep the names they carry in plane-wave DFT codes so that
// numbers can be compared term by term.
package physconst

import "math"

const (
	// AUTOA is the Bohr radius in Angstrom.
	AUTOA = 0.52917721

	// RYTOEV is one Rydberg in eV.
	RYTOEV = 13.605693

	// HARTREE is one Hartree (2 Ry) in eV.
	HARTREE = 2 * RYTOEV

	// FELECT = e^2/(4 pi eps0) in eV*Angstrom; equals AUTOA*HARTREE.
	FELECT = 2 * RYTOEV * AUTOA

	// EDEPS = 4 pi e^2/eps0 in eV*Angstrom, the prefactor of the
	// reciprocal-space Coulomb sum.
	EDEPS = 4 * math.Pi * FELECT

	// TPI is 2 pi.
	TPI = 2 * math.Pi
)
