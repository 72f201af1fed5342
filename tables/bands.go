/*
DESCRIPTION
  bands.go maps the bandwidth indicator field to the sample-rate-capped
  bandwidth enumeration, and builds the 64-band spectral partition that
  SNS scale factors are derived over.

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

import "math"

// Bandwidth is the coded upper-frequency bound of a frame, per the
// glossary in spec.md.
type Bandwidth int

const (
	BwNB Bandwidth = iota
	BwWB
	BwSSWB
	BwSWB
	BwFB
	BwFBHR
	BwUBHR
)

// String implements fmt.Stringer for log messages.
func (b Bandwidth) String() string {
	switch b {
	case BwNB:
		return "NB"
	case BwWB:
		return "WB"
	case BwSSWB:
		return "SSWB"
	case BwSWB:
		return "SWB"
	case BwFB:
		return "FB"
	case BwFBHR:
		return "FB_HR"
	case BwUBHR:
		return "UB_HR"
	default:
		return "unknown"
	}
}

// MaxBandwidth returns the highest Bandwidth value a stream at sr (with
// hrMode) may signal, and BwBits returns the number of bits bwdet must
// read to cover every value up to and including it (0 for HR streams,
// per spec.md §4.2).
func MaxBandwidth(sr SampleRate, hrMode bool) Bandwidth {
	if hrMode {
		if sr >= SR96k {
			return BwUBHR
		}
		return BwFBHR
	}
	switch {
	case sr >= SR48k:
		return BwFB
	case sr >= SR32k:
		return BwSWB
	case sr >= SR24k:
		return BwSSWB
	case sr >= SR16k:
		return BwWB
	default:
		return BwNB
	}
}

// BwBits returns ceil(log2(max+1)) bits, the minimal fixed-width field
// that selects any Bandwidth from BwNB through max, or 0 in HR mode where
// the bandwidth is implied by the stream's fixed configuration.
func BwBits(max Bandwidth, hrMode bool) int {
	if hrMode {
		return 0
	}
	n := int(max) + 1
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// buildBands has nothing to precompute: SNSBandEdges is parameterised by
// ne (which varies per FrameConfig) and is cheap enough to derive on
// demand, so there is no process-global band table to build here.
func buildBands() {}

// numSNSBands is the count of fine spectral bands SNSBandEdges partitions
// [0, ne) into. Package sns groups these 64 bands 4:1 down to the 16
// recovered scale factors of spec.md §4.3 prior to the inverse DCT-16
// reconstruction.
const numSNSBands = 64

// SNSBandEdges returns the numSNSBands+1 band-edge indices partitioning
// [0, ne) into numSNSBands bands (some of them empty when ne <
// numSNSBands), geometrically spaced so low bands are narrow
// (fine frequency resolution) and high bands are wide, matching how
// auditory-scale band layouts are shaped across the rest of the
// transform-codec family.
func SNSBandEdges(ne int) []int {
	edges := make([]int, numSNSBands+1)
	// Geometric spacing in "bin + 1" space, with each edge raised to at
	// least its own index and capped at ne. When ne < numSNSBands the
	// edges above ne all equal ne, so those bands are empty.
	logMax := math.Log(float64(ne) + 1)
	for i := 0; i <= numSNSBands; i++ {
		frac := float64(i) / float64(numSNSBands)
		edges[i] = int(math.Round(math.Exp(frac*logMax))) - 1
		if edges[i] < i {
			edges[i] = i
		}
		if edges[i] > ne {
			edges[i] = ne
		}
	}
	edges[numSNSBands] = ne
	return edges
}
