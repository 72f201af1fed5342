/*
DESCRIPTION
  ltpf.go builds the per-gain-index magnitude table and the fractional
  pitch-phase interpolation kernels the long-term post-filter uses, per
  spec.md §4.5.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

import (
	"math"

	"github.com/ausocean/lc3/fastmath"
)

// LTPFNumPhases is the number of fractional pitch-lag phases the
// numerator interpolation kernel is built for (quarter-sample
// resolution).
const LTPFNumPhases = 4

// LTPFGainDb holds the overall filter gain, in dB, selected by the 2-bit
// gain index that package ltpf derives from the frame's byte count and
// sample rate (spec.md §4.5: "activation requires
// active && g_idx < 4"). LTPFGainMag is derived from this at Init time
// via fastmath.DbToLin.
var LTPFGainDb = [4]float64{-16.48, -10.46, -6.74, -4.29}

// LTPFGainMag holds the linear overall filter gain magnitude per gain
// index, derived from LTPFGainDb by buildLTPF.
var LTPFGainMag [4]float64

// LTPFDen is the single-pole IIR denominator coefficient per gain index,
// applied as y[n] += LTPFDen[g]*y[n-1] to shape the post-filter's
// spectral tilt.
var LTPFDen = [4]float64{0.0, 0.05, 0.1, 0.15}

func buildLTPF() {
	for i, db := range LTPFGainDb {
		LTPFGainMag[i] = fastmath.DbToLin(db)
	}
}

// SincKernel returns a width-tap, Hann-windowed sinc interpolation kernel
// for fractional delay phase/LTPFNumPhases, used to build the pitch-lag
// interpolation filter at a given filter width w (spec.md §4.5: "width
// w = max(4, ns_4m >> 4)").
func SincKernel(phase, width int) []float64 {
	k := make([]float64, width)
	frac := float64(phase) / float64(LTPFNumPhases)
	center := float64(width-1)/2 + frac
	var sum float64
	for i := 0; i < width; i++ {
		x := float64(i) - center
		var s float64
		if math.Abs(x) < 1e-9 {
			s = 1
		} else {
			s = math.Sin(math.Pi*x) / (math.Pi * x)
		}
		// Hann window over the kernel support.
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(width-1))
		k[i] = s * w
		sum += k[i]
	}
	if sum != 0 {
		for i := range k {
			k[i] /= sum
		}
	}
	return k
}
