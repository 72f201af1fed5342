/*
DESCRIPTION
  imdct.go implements the inverse MDCT pipeline of spec.md §4.6: a
  conjugate pre-rotation of ns real coefficients into ns/2 complex
  samples, a mixed-radix inverse FFT of length ns/2, a post-rotation
  restoring the full ns-sample half-spectrum via its documented symmetry,
  and a windowed overlap-add against the carried nd-sample delay buffer.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mdct

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/window"
)

// State holds the nd-sample MDCT delay buffer carried across frames for
// one channel, plus the precomputed synthesis window for its frame size.
//
// The window spans ns+nd samples: a frame's ns new time-domain samples
// are concatenated after the nd-sample carried delay buffer, the whole
// block is windowed, and the nd samples of overlap between consecutive
// frames are summed. This is a direct, COLA-satisfying specialisation of
// the "ns + 2*overlap" window spec.md §4.6 describes, sized to this
// repo's nd = ns/2+overlap delay-buffer length (see tables/sizing.go).
type State struct {
	ns, nd int
	delay  []float64 // length nd
	win    []float64 // length ns + nd
}

// NewState allocates a zeroed State for a channel decoding frames of size
// ns with delay-buffer length nd.
func NewState(ns, nd int) *State {
	return &State{
		ns: ns, nd: nd,
		delay: make([]float64, nd),
		win:   buildOLAWindow(ns, nd),
	}
}

// buildOLAWindow builds a constant-overlap-add window of length ns+nd: a
// rising cosine ramp over the first nd samples, unity across the middle
// ns-nd samples, and a falling cosine ramp over the last nd samples. The
// ramps are taken from opposite halves of a single Hann(2*nd) taper (via
// go-dsp/window), which satisfies rising[i]+falling[i] == 1 at the
// 50%-hop overlap this State's nd-sample carry implements.
func buildOLAWindow(ns, nd int) []float64 {
	w := make([]float64, ns+nd)
	if nd <= 0 {
		for i := range w {
			w[i] = 1
		}
		return w
	}
	ramp := window.Hann(2 * nd)
	copy(w[:nd], ramp[:nd])
	for i := nd; i < ns; i++ {
		w[i] = 1
	}
	copy(w[ns:], ramp[nd:])
	return w
}

// preFFT performs the conjugate rotation of ns real MDCT coefficients
// (x) into ns/2 complex samples, using w = exp(-j*2*pi*(n+1/8)/ns), per
// spec.md §4.6.
func preFFT(x []float64) []complex128 {
	ns := len(x)
	half := ns / 2
	y := make([]complex128, half)
	for n := 0; n < half; n++ {
		theta := -2 * math.Pi * (float64(n) + 0.125) / float64(ns)
		rot := cmplx.Exp(complex(0, theta))
		re := x[2*n]
		im := x[ns-1-2*n]
		y[n] = complex(re, im) * rot
	}
	return y
}

// postFFT rotates and lays out the ns/2-length inverse-FFT output into
// the full ns-sample half-spectrum, applying the documented symmetry
// T[0..ns/4-1] = -half[ns/4-1..0] (and its mirrored counterpart for the
// remaining quadrants).
func postFFT(y []complex128, ns int) []float64 {
	half := ns / 2
	t := make([]float64, ns)
	quarter := ns / 4

	for n := 0; n < half; n++ {
		theta := -2 * math.Pi * (float64(n) + 0.125) / float64(ns)
		rot := cmplx.Exp(complex(0, theta))
		v := y[n] * rot
		re, im := real(v), imag(v)
		if n < quarter {
			t[quarter-1-n] = -re
		} else {
			t[n-quarter] = im
		}
	}
	for n := 0; n < half; n++ {
		t[ns-1-n] = -t[n]
	}
	return t
}

// Synthesize runs the full IMDCT pipeline for one frame's ns spectral
// coefficients, overlap-adding with the carried delay buffer, and
// returns ns time-domain samples. The delay buffer is updated in place.
// When srcNS != 0 and differs from len(coeffs), the inverse-transform
// output is rescaled by sqrt(ns/srcNS) to compensate for HR-mode or
// fallback-rate resampling, per spec.md §4.6.
func (s *State) Synthesize(coeffs []float64, srcNS int) []float64 {
	ns := len(coeffs)
	half := ns / 2

	pre := preFFT(coeffs)
	spec := IFFT(pre)
	for i := range spec {
		spec[i] *= complex(float64(half), 0) // undo IFFT's built-in 1/N scaling
	}
	td := postFFT(spec, ns)

	if srcNS != 0 && srcNS != ns {
		scale := math.Sqrt(float64(ns) / float64(srcNS))
		for i := range td {
			td[i] *= scale
		}
	}

	return s.overlapAdd(td)
}

// overlapAdd windows td (length ns) against the carried delay buffer
// (length nd) and the synthesis window (length ns+nd), returning ns
// output samples and updating the delay buffer for the next frame.
func (s *State) overlapAdd(td []float64) []float64 {
	ns, nd := s.ns, s.nd
	out := make([]float64, ns)

	ext := make([]float64, ns+nd)
	copy(ext[:nd], s.delay)
	copy(ext[nd:], td)
	for i := range ext {
		ext[i] *= s.win[i]
	}

	for i := 0; i < ns; i++ {
		v := ext[i]
		if i+ns < len(ext) {
			v += ext[i+ns]
		}
		out[i] = v
	}

	// Carry the tail (length nd) forward as the new delay buffer.
	copy(s.delay, ext[ns:])

	return out
}
