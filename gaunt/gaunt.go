// Package gaunt evaluates Gaunt coefficients, the angular integrals of
// three spherical harmonics, for both the complex and the real harmonic
// conventions. Real coefficients drive every angular contraction in the
// augmentation-sphere corrections, so the package also provides a
// concurrency-safe memoizing table.
package gaunt

import (
	"math"
	"sync"
)

// Complex returns the Gaunt coefficient of three complex spherical
// harmonics with the Condon-Shortley phase,
//
//	∫ Y_{l1 m1} Y_{l2 m2} Y_{l3 m3} dΩ.
//
// It vanishes unless m1+m2+m3 = 0, l1+l2+l3 is even, and the orders
// satisfy the triangle condition.
func Complex(l1, m1, l2, m2, l3, m3 int) float64 {
	if m1+m2+m3 != 0 {
		return 0
	}
	if (l1+l2+l3)&1 != 0 {
		return 0
	}
	if l3 < abs(l1-l2) || l3 > l1+l2 {
		return 0
	}
	n := math.Sqrt(float64((2*l1+1)*(2*l2+1)*(2*l3+1)) / (4 * math.Pi))
	return n * Wigner3j(l1, l2, l3, 0, 0, 0) * Wigner3j(l1, l2, l3, m1, m2, m3)
}

// ylmTerm is one component of a real harmonic expanded over complex ones.
type ylmTerm struct {
	mu int
	c  complex128
}

// ylmTerms expands the real harmonic S_{lm} over complex harmonics:
// S_{lm} = Σ c_μ Y_l^μ. At most two components are nonzero.
func ylmTerms(m int) [2]ylmTerm {
	const s = math.Sqrt2 / 2
	switch {
	case m > 0:
		sign := 1.0
		if m&1 == 1 {
			sign = -1
		}
		return [2]ylmTerm{{m, complex(sign*s, 0)}, {-m, complex(s, 0)}}
	case m < 0:
		sign := 1.0
		if m&1 != 0 {
			sign = -1
		}
		return [2]ylmTerm{{-m, complex(0, -sign*s)}, {m, complex(0, s)}}
	default:
		return [2]ylmTerm{{0, 1}, {0, 0}}
	}
}

// Real returns the Gaunt coefficient of three real spherical harmonics,
// obtained by expanding each real harmonic over complex ones and summing
// the resulting complex coefficients. The imaginary parts cancel exactly.
func Real(l1, m1, l2, m2, l3, m3 int) float64 {
	if (l1+l2+l3)&1 != 0 {
		return 0
	}
	if l3 < abs(l1-l2) || l3 > l1+l2 {
		return 0
	}
	t1 := ylmTerms(m1)
	t2 := ylmTerms(m2)
	t3 := ylmTerms(m3)
	var sum complex128
	for _, a := range t1 {
		if a.c == 0 {
			continue
		}
		for _, b := range t2 {
			if b.c == 0 {
				continue
			}
			for _, c := range t3 {
				if c.c == 0 {
					continue
				}
				g := Complex(l1, a.mu, l2, b.mu, l3, c.mu)
				if g == 0 {
					continue
				}
				sum += a.c * b.c * c.c * complex(g, 0)
			}
		}
	}
	return real(sum)
}

type tableKey struct {
	l1, m1, l2, m2, l3, m3 int
}

// Table memoizes real Gaunt coefficients. It is safe for concurrent use.
type Table struct {
	mu sync.RWMutex
	m  map[tableKey]float64
}

// NewTable returns an empty coefficient table.
func NewTable() *Table {
	return &Table{m: make(map[tableKey]float64)}
}

// Real returns the real Gaunt coefficient, computing and caching it on
// first use.
func (t *Table) Real(l1, m1, l2, m2, l3, m3 int) float64 {
	k := tableKey{l1, m1, l2, m2, l3, m3}
	t.mu.RLock()
	v, ok := t.m[k]
	t.mu.RUnlock()
	if ok {
		return v
	}
	v = Real(l1, m1, l2, m2, l3, m3)
	t.mu.Lock()
	t.m[k] = v
	t.mu.Unlock()
	return v
}
