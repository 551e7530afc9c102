package pitch

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// DFT computes the discrete Fourier transform of x at its exact length.
// Powers of two go through the radix-2 path; everything else through
// Bluestein's chirp-z algorithm, so arbitrary segment lengths stay
// O(N log N) without zero-padding changing the bin spacing.
func DFT(x []complex128) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n&(n-1) == 0 {
		out := make([]complex128, n)
		copy(out, x)
		radix2(out)
		return out
	}
	return bluestein(x)
}

// radix2 is an in-place iterative Cooley-Tukey FFT. len(x) must be a
// power of two.
func radix2(x []complex128) {
	n := len(x)
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}
	for size := 2; size <= n; size *= 2 {
		half := size / 2
		step := -2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := cmplx.Exp(complex(0, step*float64(k)))
				even := x[start+k]
				odd := x[start+k+half] * w
				x[start+k] = even + odd
				x[start+k+half] = even - odd
			}
		}
	}
}

func inverseRadix2(x []complex128) {
	n := len(x)
	for i := range x {
		x[i] = cmplx.Conj(x[i])
	}
	radix2(x)
	scale := complex(1/float64(n), 0)
	for i := range x {
		x[i] = cmplx.Conj(x[i]) * scale
	}
}

// bluestein evaluates the length-n DFT as a convolution with a chirp,
// letting the radix-2 kernel do the heavy lifting at a padded
// power-of-two length >= 2n-1.
func bluestein(x []complex128) []complex128 {
	n := len(x)
	m := 1
	for m < 2*n-1 {
		m *= 2
	}

	chirp := make([]complex128, n)
	for i := 0; i < n; i++ {
		// i*i mod 2n keeps the angle argument small
		angle := -math.Pi * float64((i*i)%(2*n)) / float64(n)
		chirp[i] = cmplx.Exp(complex(0, angle))
	}

	a := make([]complex128, m)
	for i := 0; i < n; i++ {
		a[i] = x[i] * chirp[i]
	}
	b := make([]complex128, m)
	b[0] = 1
	for i := 1; i < n; i++ {
		b[i] = cmplx.Conj(chirp[i])
		b[m-i] = b[i]
	}

	radix2(a)
	radix2(b)
	for i := range a {
		a[i] *= b[i]
	}
	inverseRadix2(a)

	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] * chirp[i]
	}
	return out
}
