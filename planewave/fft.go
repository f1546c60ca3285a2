package planewave

import "gonum.org/v1/gonum/dsp/fourier"

// FFT3 is the forward 3D discrete Fourier transform over a C-order
// flattened array (z fastest). The transform is unnormalized. Engines
// accept any implementation with this signature.
type FFT3 func(data []complex128, dims [3]int) []complex128

// GonumFFT3 is the default transform, composed from gonum's 1D complex
// FFTs applied along z, y, then x. The input is left unmodified.
func GonumFFT3(data []complex128, dims [3]int) []complex128 {
	nx, ny, nz := dims[0], dims[1], dims[2]
	if len(data) != nx*ny*nz {
		panic("planewave: FFT data length does not match grid dims")
	}
	out := make([]complex128, len(data))
	copy(out, data)

	idx := func(ix, iy, iz int) int { return (ix*ny+iy)*nz + iz }

	// Along z, where runs are contiguous.
	fft := fourier.NewCmplxFFT(nz)
	buf := make([]complex128, nz)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			row := out[idx(ix, iy, 0) : idx(ix, iy, 0)+nz]
			copy(buf, row)
			fft.Coefficients(row, buf)
		}
	}

	// Along y, stride nz.
	fft = fourier.NewCmplxFFT(ny)
	buf = make([]complex128, ny)
	res := make([]complex128, ny)
	for ix := 0; ix < nx; ix++ {
		for iz := 0; iz < nz; iz++ {
			for iy := 0; iy < ny; iy++ {
				buf[iy] = out[idx(ix, iy, iz)]
			}
			fft.Coefficients(res, buf)
			for iy := 0; iy < ny; iy++ {
				out[idx(ix, iy, iz)] = res[iy]
			}
		}
	}

	// Along x, stride ny*nz.
	fft = fourier.NewCmplxFFT(nx)
	buf = make([]complex128, nx)
	res = make([]complex128, nx)
	for iy := 0; iy < ny; iy++ {
		for iz := 0; iz < nz; iz++ {
			for ix := 0; ix < nx; ix++ {
				buf[ix] = out[idx(ix, iy, iz)]
			}
			fft.Coefficients(res, buf)
			for ix := 0; ix < nx; ix++ {
				out[idx(ix, iy, iz)] = res[ix]
			}
		}
	}
	return out
}
