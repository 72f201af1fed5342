/*
DESCRIPTION
  fft.go implements the mixed-radix (2/3/5) complex FFT spec.md §4.6
  requires: one radix-5 butterfly first (when 5 divides the length), then
  up to two radix-3 stages, then radix-2 stages until length 1. Sizes
  that don't fully decompose this way fall back to a direct DFT on the
  undecomposed remainder, and github.com/mjibson/go-dsp/fft.FFT is used
  by the test suite as an independent cross-check of this hand-written
  transform (see SPEC_FULL.md §4).

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mdct implements the mixed-radix inverse FFT and the IMDCT
// pre-rotation, post-rotation and windowed overlap-add stages used to
// turn one frame's SNS-shaped spectrum into time-domain PCM.
package mdct

import (
	"math"
	"math/cmplx"

	"github.com/ausocean/lc3/tables"
)

// radixPlan returns the ordered radix factorisation of n per spec.md
// §4.6's stage order, followed by any undecomposed remainder (1 if n
// fully decomposes into 2s, 3s and at most one 5).
func radixPlan(n int) (radices []int, remainder int) {
	if n%5 == 0 {
		radices = append(radices, 5)
		n /= 5
	}
	for threes := 0; threes < 2 && n%3 == 0; threes++ {
		radices = append(radices, 3)
		n /= 3
	}
	for n%2 == 0 {
		radices = append(radices, 2)
		n /= 2
	}
	return radices, n
}

// FFT computes the forward discrete Fourier transform of x using the
// mixed-radix decomposition above. The result is returned in a new slice;
// x is not modified and the transform is not computed in place.
func FFT(x []complex128) []complex128 {
	return fftMixed(x, false)
}

// IFFT computes the inverse discrete Fourier transform of x (normalised
// by 1/N), using the same mixed-radix decomposition run in reverse.
func IFFT(x []complex128) []complex128 {
	y := fftMixed(x, true)
	n := complex(float64(len(x)), 0)
	for i := range y {
		y[i] /= n
	}
	return y
}

func fftMixed(x []complex128, inverse bool) []complex128 {
	n := len(x)
	if n <= 1 {
		out := make([]complex128, n)
		copy(out, x)
		return out
	}
	radices, remainder := radixPlan(n)
	return recurse(x, radices, remainder, inverse)
}

// recurse implements generalised Cooley-Tukey decimation-in-time: split
// x into r interleaved subsequences of length m = len(x)/r, recursively
// transform each with the remaining radices, then combine with
// butterflies using the N-th root twiddle table.
func recurse(x []complex128, radices []int, remainder int, inverse bool) []complex128 {
	n := len(x)
	if len(radices) == 0 {
		return directDFT(x, remainder, inverse)
	}
	r := radices[0]
	rest := radices[1:]
	m := n / r

	subs := make([][]complex128, r)
	for j := 0; j < r; j++ {
		sub := make([]complex128, m)
		for k := 0; k < m; k++ {
			sub[k] = x[j+k*r]
		}
		subs[j] = recurse(sub, rest, remainder, inverse)
	}

	tw := tables.TwiddleTable(n)
	out := make([]complex128, n)
	for q := 0; q < r; q++ {
		for k := 0; k < m; k++ {
			var sum complex128
			for j := 0; j < r; j++ {
				idx := (j * (k + q*m)) % n
				w := tw[idx]
				if inverse {
					w = cmplx.Conj(w)
				}
				sum += subs[j][k] * w
			}
			out[k+q*m] = sum
		}
	}
	return out
}

// directDFT handles any factor outside {2,3,5} via a plain O(n^2)
// transform; none of the frame sizes spec.md §8 enumerates require it,
// but arbitrary future sizes degrade gracefully instead of panicking.
func directDFT(x []complex128, _ int, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			theta := sign * 2 * math.Pi * float64(k*t) / float64(n)
			sum += x[t] * cmplx.Exp(complex(0, theta))
		}
		out[k] = sum
	}
	return out
}
