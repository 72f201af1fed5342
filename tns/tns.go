/*
DESCRIPTION
  tns.go implements Temporal Noise Shaping synthesis: reading 1 or 2
  filters' presence/order/reflection-coefficient fields from the
  bitstream and applying the standard 8-tap all-pole lattice inverse
  filter to each filter's MDCT sub-band, per spec.md §4.4.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tns implements Temporal Noise Shaping synthesis.
package tns

import (
	"github.com/ausocean/lc3/bits"
	"github.com/ausocean/lc3/tables"
	"github.com/pkg/errors"
)

// ErrOrderRange is returned when a filter's decoded order exceeds the
// bound spec.md §4.4 requires for short frames.
var ErrOrderRange = errors.New("tns: reflection-coefficient order out of range")

const maxOrder = 8

// Filter holds one TNS filter's unquantised reflection coefficients.
type Filter struct {
	Present bool
	Order   int
	RC      []float64 // length Order, each in (-1, 1)
}

// NumFilters returns 2 when dt >= 5ms and bw >= SWB, else 1, per spec.md
// §4.4.
func NumFilters(dt tables.Duration, bw tables.Bandwidth) int {
	if dt >= tables.Dur5ms && bw >= tables.BwSWB {
		return 2
	}
	return 1
}

// LPCWeighting reports the LPC weighting flag derived from the frame's
// payload size, per spec.md §4.4.
func LPCWeighting(nbytes int) bool {
	return nbytes < 160
}

// Read parses 1 or 2 TNS filters from r.
func Read(r *bits.Reader, dt tables.Duration, bw tables.Bandwidth) ([]Filter, error) {
	n := NumFilters(dt, bw)
	filters := make([]Filter, n)
	maxAllowed := maxOrder
	if dt <= tables.Dur5ms {
		maxAllowed = 4
	}

	for i := 0; i < n; i++ {
		present := r.GetBit() == 1
		if !present {
			continue
		}
		order := r.GetSymbol(tables.TNSOrderModel) + 1 // model is 8-symbol, order is 1..8
		if order > maxAllowed {
			return filters, ErrOrderRange
		}
		rc := make([]float64, order)
		for k := 0; k < order; k++ {
			code := int(r.GetBits(5)) - 8 // unsigned 0..16, offset by 8 -> signed -8..8
			rc[k] = unquantiseRC(code)
		}
		filters[i] = Filter{Present: true, Order: order, RC: rc}
	}
	return filters, nil
}

// unquantiseRC maps a signed code in [-8,8] to a reflection coefficient
// via the 9-element sine table, sign taken from the code.
func unquantiseRC(code int) float64 {
	sign := 1.0
	if code < 0 {
		sign = -1.0
		code = -code
	}
	if code >= len(tables.TNSSineTable) {
		code = len(tables.TNSSineTable) - 1
	}
	return sign * tables.TNSSineTable[code]
}

// Synthesize applies each present filter's inverse lattice filter to its
// sub-band of lines in place. When len(filters) == 2, lines is split
// into two equal halves (low sub-band, high sub-band); otherwise the
// single filter spans the whole vector.
func Synthesize(lines []float64, filters []Filter) {
	if len(filters) == 2 {
		mid := len(lines) / 2
		applyFilter(lines[:mid], filters[0])
		applyFilter(lines[mid:], filters[1])
		return
	}
	if len(filters) == 1 {
		applyFilter(lines, filters[0])
	}
}

// applyFilter runs the all-pole lattice synthesis filter in place over
// band using f.RC. Filter state (the per-stage backward-prediction
// memory) is local to this call, matching spec.md §4.4's "filter state
// persists only within the frame".
func applyFilter(band []float64, f Filter) {
	if !f.Present || f.Order == 0 {
		return
	}
	m := f.Order
	bState := make([]float64, m)

	for n, e := range band {
		fPrev := e
		newB := make([]float64, m)
		for i := m; i >= 1; i-- {
			k := f.RC[i-1]
			bDelayed := bState[i-1]
			fCur := fPrev - k*bDelayed
			bCur := bDelayed + k*fCur
			if i < m {
				newB[i] = bCur
			}
			fPrev = fCur
		}
		newB[0] = fPrev
		band[n] = fPrev
		bState = newB
	}
}
