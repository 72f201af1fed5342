/*
DESCRIPTION
  fft.go caches the per-stage twiddle factors the mixed-radix FFT in
  package mdct needs, so repeated decodes at the same frame size never
  recompute trigonometric tables.

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
	"math/cmplx"
	"sync"
)

var (
	twiddleMu    sync.Mutex
	twiddleCache = map[int][]complex128{}
)

// TwiddleTable returns the N-th roots of unity W_N^k = e^{-2*pi*i*k/N} for
// k in [0,N), building and caching them on first use for a given N.
func TwiddleTable(n int) []complex128 {
	twiddleMu.Lock()
	defer twiddleMu.Unlock()
	if t, ok := twiddleCache[n]; ok {
		return t
	}
	t := make([]complex128, n)
	for k := 0; k < n; k++ {
		theta := -2 * math.Pi * float64(k) / float64(n)
		t[k] = cmplx.Exp(complex(0, theta))
	}
	twiddleCache[n] = t
	return t
}
