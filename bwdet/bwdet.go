/*
DESCRIPTION
  bwdet.go reads the bandwidth indicator field from the bitstream and
  clamps it to the range the stream's sample rate allows, per spec.md
  §4.2.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bwdet decodes the LC3 bandwidth indicator field.
package bwdet

import (
	"github.com/ausocean/lc3/bits"
	"github.com/ausocean/lc3/tables"
)

// Result is the outcome of reading one frame's bandwidth field.
type Result struct {
	Bandwidth tables.Bandwidth
	Overrun   bool // true if the decoded value exceeded the allowed max and was clamped
}

// Read reads 0-3 bits (0 in HR mode) selecting a Bandwidth, capped by the
// stream's sample rate and HR mode. An out-of-range value is clamped to
// the maximum allowed and reported via Result.Overrun, matching spec.md
// §9's resolution of the "bandwidth-overrun" open question: treat it as
// a recoverable, bad-frame-worthy condition rather than silently
// ignoring it.
func Read(r *bits.Reader, sr tables.SampleRate, hrMode bool) Result {
	max := tables.MaxBandwidth(sr, hrMode)
	n := tables.BwBits(max, hrMode)
	if n == 0 {
		return Result{Bandwidth: max}
	}
	v := tables.Bandwidth(r.GetBits(n))
	if v > max {
		return Result{Bandwidth: max, Overrun: true}
	}
	return Result{Bandwidth: v}
}
