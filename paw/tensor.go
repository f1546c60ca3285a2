package paw

// Tensor3 is a dense rank-3 tensor stored flat in row-major order.
// gonum's mat package stops at rank 2, so the correction tensors carry
// their own trivial indexing.
type Tensor3 struct {
	d0, d1, d2 int
	data       []float64
}

// NewTensor3 allocates a zeroed d0 x d1 x d2 tensor.
func NewTensor3(d0, d1, d2 int) *Tensor3 {
	return &Tensor3{d0: d0, d1: d1, d2: d2, data: make([]float64, d0*d1*d2)}
}

// Dims returns the tensor dimensions.
func (t *Tensor3) Dims() (d0, d1, d2 int) { return t.d0, t.d1, t.d2 }

// At returns the element at (i, j, k).
func (t *Tensor3) At(i, j, k int) float64 { return t.data[(i*t.d1+j)*t.d2+k] }

// Set stores v at (i, j, k).
func (t *Tensor3) Set(i, j, k int, v float64) { t.data[(i*t.d1+j)*t.d2+k] = v }

// Add accumulates v into (i, j, k).
func (t *Tensor3) Add(i, j, k int, v float64) { t.data[(i*t.d1+j)*t.d2+k] += v }

// Tensor4 is a dense rank-4 tensor stored flat in row-major order.
type Tensor4 struct {
	d0, d1, d2, d3 int
	data           []float64
}

// NewTensor4 allocates a zeroed d0 x d1 x d2 x d3 tensor.
func NewTensor4(d0, d1, d2, d3 int) *Tensor4 {
	return &Tensor4{d0: d0, d1: d1, d2: d2, d3: d3, data: make([]float64, d0*d1*d2*d3)}
}

// Dims returns the tensor dimensions.
func (t *Tensor4) Dims() (d0, d1, d2, d3 int) { return t.d0, t.d1, t.d2, t.d3 }

// At returns the element at (i, j, k, l).
func (t *Tensor4) At(i, j, k, l int) float64 {
	return t.data[((i*t.d1+j)*t.d2+k)*t.d3+l]
}

// Set stores v at (i, j, k, l).
func (t *Tensor4) Set(i, j, k, l int, v float64) {
	t.data[((i*t.d1+j)*t.d2+k)*t.d3+l] = v
}

// Add accumulates v into (i, j, k, l).
func (t *Tensor4) Add(i, j, k, l int, v float64) {
	t.data[((i*t.d1+j)*t.d2+k)*t.d3+l] += v
}
