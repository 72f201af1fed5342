/*
DESCRIPTION
  synth.go implements SNS synthesis: applying the 16 reconstructed scale
  factors to the decoded spectral lines as interpolated gains exp(-scf),
  per spec.md's module list item 10 ("SNS synthesis -- spectral shaping
  by interpolated gains exp(-scf)").

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sns

import (
	"github.com/ausocean/lc3/fastmath"
	"github.com/ausocean/lc3/tables"
)

// Synthesize scales lines (ne MDCT-domain spectral lines, modified in
// place) by exp(-scf) per spec.md's spectral-shaping step, interpolating
// sf's 16 band gains across lines' ne-length band partition
// (tables.SNSBandEdges).
func Synthesize(lines []float64, sf ScaleFactors, ne int) {
	edges := sfBandEdges(sf, tables.SNSBandEdges(ne))
	gain := interpolateGains(sf, edges, ne)
	for i := range lines {
		lines[i] *= gain[i]
	}
}

// sfBandEdges groups tables.SNSBandEdges' numSNSBands (64)-band partition
// down 4:1 into the len(sf) (16) coarse band edges the scale factors
// actually apply to: edges[b] = fineEdges[4*b] is the start of
// scale-factor band b.
func sfBandEdges(sf ScaleFactors, fineEdges []int) []int {
	groupSize := (len(fineEdges) - 1) / len(sf)
	edges := make([]int, len(sf)+1)
	for b := range edges {
		edges[b] = fineEdges[b*groupSize]
	}
	return edges
}

// interpolateGains expands the 16 band-level scale factors into a
// per-line gain vector of length ne, linearly interpolating between each
// band's centre and the next so the shaping curve has no discontinuity
// at band edges.
func interpolateGains(sf ScaleFactors, edges []int, ne int) []float64 {
	centres := make([]float64, len(sf))
	for b := range sf {
		lo, hi := float64(edges[b]), float64(edges[b+1])
		centres[b] = (lo + hi) / 2
	}

	gain := make([]float64, ne)
	for i := 0; i < ne; i++ {
		x := float64(i)
		b := 0
		for b < len(sf)-1 && centres[b+1] < x {
			b++
		}
		var scf float64
		if b == len(sf)-1 || x <= centres[b] {
			scf = sf[b]
		} else {
			span := centres[b+1] - centres[b]
			frac := 0.0
			if span > 0 {
				frac = (x - centres[b]) / span
			}
			scf = sf[b]*(1-frac) + sf[b+1]*frac
		}
		gain[i] = fastmath.Exp(-scf)
	}
	return gain
}
