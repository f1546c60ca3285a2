package gaunt

import "math"

// factTab holds n! for n up to the largest value representable in a
// float64. Angular momenta in augmentation spheres stay far below this.
var factTab = func() [171]float64 {
	var f [171]float64
	f[0] = 1
	for i := 1; i < len(f); i++ {
		f[i] = f[i-1] * float64(i)
	}
	return f
}()

func fact(n int) float64 { return factTab[n] }

func triangleCoef(j1, j2, j3 int) float64 {
	return fact(j1+j2-j3) * fact(j1-j2+j3) * fact(-j1+j2+j3) / fact(j1+j2+j3+1)
}

// Wigner3j returns the Wigner 3-j symbol for integer angular momenta,
// evaluated with the Racah sum over exact tabulated factorials.
func Wigner3j(j1, j2, j3, m1, m2, m3 int) float64 {
	if m1+m2+m3 != 0 {
		return 0
	}
	if j3 < abs(j1-j2) || j3 > j1+j2 {
		return 0
	}
	if abs(m1) > j1 || abs(m2) > j2 || abs(m3) > j3 {
		return 0
	}

	pre := math.Sqrt(triangleCoef(j1, j2, j3) *
		fact(j1+m1) * fact(j1-m1) *
		fact(j2+m2) * fact(j2-m2) *
		fact(j3+m3) * fact(j3-m3))

	kmin := max(0, j2-j3-m1, j1-j3+m2)
	kmax := min(j1+j2-j3, j1-m1, j2+m2)
	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		term := fact(k) * fact(j1+j2-j3-k) *
			fact(j1-m1-k) * fact(j2+m2-k) *
			fact(j3-j2+m1+k) * fact(j3-j1-m2+k)
		if k&1 == 0 {
			sum += 1 / term
		} else {
			sum -= 1 / term
		}
	}
	if (j1-j2-m3)&1 != 0 {
		sum = -sum
	}
	return pre * sum
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
