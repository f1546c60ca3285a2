package radial

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate"
)

func linspace(a, b float64, n int) []float64 {
	x := make([]float64, n)
	h := (b - a) / float64(n-1)
	for i := range x {
		x[i] = a + float64(i)*h
	}
	x[n-1] = b
	return x
}

// TestSimpsonWeightsUniform checks the derived weights against exact
// polynomial integrals and against gonum's Simpsons on a uniform grid.
func TestSimpsonWeightsUniform(t *testing.T) {
	r := linspace(0, 1, 101) // even interval count
	g, err := NewGrid(r)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	f := make([]float64, len(r))
	for i, x := range r {
		f[i] = x*x*x + 2*x*x // Simpson is exact for cubics on uniform pairs
	}
	exact := 0.25 + 2.0/3.0

	got := g.Integrate(f)
	if math.Abs(got-exact) > 1e-12 {
		t.Errorf("Integrate(x^3+2x^2) = %v, want %v", got, exact)
	}

	ref := integrate.Simpsons(r, f)
	if math.Abs(got-ref) > 1e-12 {
		t.Errorf("weighted sum %v disagrees with integrate.Simpsons %v", got, ref)
	}
}

// TestSimpsonWeightsLogGrid checks quadratic exactness on a logarithmic
// grid of the kind PAW datasets use.
func TestSimpsonWeightsLogGrid(t *testing.T) {
	n := 201
	r := make([]float64, n)
	r0, gamma := 1e-3, math.Log(2.0/1e-3)/float64(n-1)
	for i := range r {
		r[i] = r0 * math.Exp(gamma*float64(i))
	}
	g, err := NewGrid(r)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	f := make([]float64, n)
	for i, x := range r {
		f[i] = x * x // quadratics are integrated exactly on any spacing
	}
	exact := (math.Pow(r[n-1], 3) - math.Pow(r[0], 3)) / 3

	got := g.Integrate(f)
	if math.Abs(got-exact) > 1e-12*math.Abs(exact) {
		t.Errorf("Integrate(r^2) = %v, want %v", got, exact)
	}

	ref := integrate.Simpsons(r, f)
	if math.Abs(got-ref) > 1e-10*math.Abs(exact) {
		t.Errorf("weighted sum %v disagrees with integrate.Simpsons %v", got, ref)
	}
}

// TestSimpsonWeightsOddIntervals exercises the end correction applied when
// the interval count is odd.
func TestSimpsonWeightsOddIntervals(t *testing.T) {
	r := []float64{0, 0.1, 0.25, 0.4, 0.7, 1.0} // 5 intervals
	g, err := NewGrid(r)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	f := make([]float64, len(r))
	for i, x := range r {
		f[i] = 3*x*x + x
	}
	exact := 1.0 + 0.5

	got := g.Integrate(f)
	if math.Abs(got-exact) > 1e-12 {
		t.Errorf("Integrate(3x^2+x) = %v, want %v", got, exact)
	}
}

func TestIntegrateTo(t *testing.T) {
	r := linspace(0.1, 2.0, 41)
	g, err := NewGrid(r)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	f := make([]float64, len(r))
	for i, x := range r {
		f[i] = math.Sin(x)
	}

	cut := 17
	want := 0.0
	for i := 0; i < cut; i++ {
		want += g.W[i] * f[i]
	}
	if got := g.IntegrateTo(cut, f); math.Abs(got-want) > 1e-14 {
		t.Errorf("IntegrateTo(%d) = %v, want %v", cut, got, want)
	}

	if got, want := g.IntegrateTo(g.N(), f), g.Integrate(f); math.Abs(got-want) > 1e-14 {
		t.Errorf("IntegrateTo(N) = %v, want full integral %v", got, want)
	}
}

func TestNewGridErrors(t *testing.T) {
	t.Run("TooFewPoints", func(t *testing.T) {
		if _, err := NewGrid([]float64{0, 1}); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("got %v, want ErrTooFewPoints", err)
		}
	})
	t.Run("NonMonotonic", func(t *testing.T) {
		if _, err := NewGrid([]float64{0, 0.5, 0.5, 1}); !errors.Is(err, ErrNonMonotonic) {
			t.Errorf("got %v, want ErrNonMonotonic", err)
		}
	})
	t.Run("LengthMismatch", func(t *testing.T) {
		if _, err := NewGridWithWeights([]float64{0, 1, 2}, []float64{1, 1}); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("got %v, want ErrLengthMismatch", err)
		}
	})
}
