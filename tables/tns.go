/*
DESCRIPTION
  tns.go builds the TNS reflection-coefficient sine table and the
  arithmetic-coder models used to read filter order and presence, per
  spec.md §4.4.

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

	"github.com/ausocean/lc3/bits"
)

// TNSSineTable holds sin(pi*i/17) for i in [0,8], the 9-element table
// spec.md §4.4 uses (positive indices only; sign comes from the
// quantised code) to unquantise reflection coefficients.
var TNSSineTable [9]float64

// TNSOrderModel is the arithmetic-coder model used to read a filter's LPC
// order (1..8), an 8-symbol near-uniform model.
var TNSOrderModel bits.Model

func buildTNS() {
	for i := range TNSSineTable {
		TNSSineTable[i] = math.Sin(math.Pi * float64(i) / 17)
	}
	TNSOrderModel = uniformModel(8)
}

// uniformModel builds an n-symbol cumulative-frequency model over a total
// of 1024, used where the standard's exact trained probabilities are not
// reproduced here (see DESIGN.md) but a valid, decodable model shape is
// still required.
func uniformModel(n int) bits.Model {
	m := make(bits.Model, n)
	base := 1024 / n
	rem := 1024 % n
	low := 0
	for i := 0; i < n; i++ {
		rng := base
		if i < rem {
			rng++
		}
		m[i] = bits.Interval{Low: uint16(low), Range: uint16(rng)}
		low += rng
	}
	return m
}
