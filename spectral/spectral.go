/*
DESCRIPTION
  spectral.go implements the spectral-line decoder: a context-adaptive
  arithmetic-coded magnitude per line (with an escape to a raw-bit
  magnitude extension for large values), a sign bit per nonzero line,
  and a trailing residual-bit refinement pass that consumes whatever
  bits remain to nudge each nonzero line toward finer precision, per
  spec.md's module list item 8 ("Spectral decoder (arithmetic +
  residual) -- produces ne MDCT lines").

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package spectral implements spectral-line decoding, producing the ne
// MDCT-domain lines that feed SNS synthesis.
package spectral

import (
	"math"

	"github.com/ausocean/lc3/bits"
	"github.com/ausocean/lc3/tables"
	"github.com/pkg/errors"
)

// ErrBadSpectrum is returned when the bitstream's cursors cross or the
// arithmetic coder state is invalid while decoding the spectrum.
var ErrBadSpectrum = errors.New("spectral: bitstream error during spectral decode")

// residualStep is the magnitude nudge applied per residual bit.
const residualStep = 0.25

// escapeBits is the width of the raw-bit magnitude extension read after
// an escape symbol.
const escapeBits = 8

// Decode reads ne spectral lines from r.
func Decode(r *bits.Reader, ne int) ([]float64, error) {
	lines := make([]float64, ne)
	ctx := 0

	for i := 0; i < ne; i++ {
		sym := r.GetSymbol(tables.SpectralMagModel[ctx])
		mag := float64(sym)
		if sym == tables.MaxMagSymbol-1 {
			ext := r.GetBits(escapeBits)
			mag = float64(tables.MaxMagSymbol-1) + float64(ext)
		}

		if mag != 0 && r.GetBit() == 1 {
			mag = -mag
		}

		lines[i] = mag
		ctx = magContext(mag)
	}

	refineResidual(r, lines)

	if r.CheckError() {
		return lines, ErrBadSpectrum
	}
	return lines, nil
}

// refineResidual consumes one bit per nonzero line, in decode order,
// for as long as bits remain, nudging each line's magnitude by
// +/- residualStep toward the bitstream's finer-precision estimate.
func refineResidual(r *bits.Reader, lines []float64) {
	for i := range lines {
		if r.BitsLeft() <= 0 {
			return
		}
		if lines[i] == 0 {
			continue
		}
		delta := residualStep
		if lines[i] < 0 {
			delta = -delta
		}
		if r.GetBit() == 1 {
			lines[i] += delta
		} else {
			lines[i] -= delta
		}
	}
}

// magContext buckets a decoded magnitude into one of
// tables.SpectralContexts context classes for the next line's model
// selection.
func magContext(mag float64) int {
	a := math.Abs(mag)
	switch {
	case a == 0:
		return 0
	case a <= 1:
		return 1
	case a <= 3:
		return 2
	default:
		return 3
	}
}
