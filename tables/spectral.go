/*
DESCRIPTION
  spectral.go builds the context-adaptive arithmetic models the
  spectral-line decoder indexes by each line's running magnitude
  context, per spec.md's module list item 8 ("Spectral decoder
  (arithmetic + residual)").

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

import "github.com/ausocean/lc3/bits"

// SpectralContexts is the number of magnitude-context buckets the
// spectral-line arithmetic model is indexed by.
const SpectralContexts = 4

// MaxMagSymbol is the number of distinct symbols each context's model
// covers: symbols 0..MaxMagSymbol-2 are literal line magnitudes,
// MaxMagSymbol-1 is the escape symbol that hands off to the raw-bit
// magnitude extension.
const MaxMagSymbol = 8

// SpectralMagModel holds one near-uniform model per magnitude context.
var SpectralMagModel [SpectralContexts]bits.Model

func buildSpectral() {
	for c := 0; c < SpectralContexts; c++ {
		SpectralMagModel[c] = uniformModel(MaxMagSymbol)
	}
}
