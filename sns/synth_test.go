package sns

import (
	"math"
	"testing"
)

func TestSynthesizeFlatScaleFactorsScaleUniformly(t *testing.T) {
	var sf ScaleFactors // all zero -> gain exp(0) == 1 everywhere
	lines := []float64{1, 2, 3, 4, 5}
	want := append([]float64(nil), lines...)
	Synthesize(lines, sf, len(lines))
	for i := range lines {
		if math.Abs(lines[i]-want[i]) > 1e-9 {
			t.Errorf("lines[%d] = %v, want %v", i, lines[i], want[i])
		}
	}
}

func TestSynthesizeNegativeScaleFactorBoostsEnergy(t *testing.T) {
	var sf ScaleFactors
	for i := range sf {
		sf[i] = -1 // exp(1) > 1 everywhere
	}
	lines := make([]float64, 20)
	for i := range lines {
		lines[i] = 1
	}
	Synthesize(lines, sf, len(lines))
	for i, v := range lines {
		if v <= 1 {
			t.Errorf("lines[%d] = %v, want > 1 under negative scale factors", i, v)
		}
	}
}

// TestSynthesizeVariesAcrossFullSpectrum guards against collapsing the
// interpolation down to a single trailing band: with a scale factor
// ramp, gain must still vary near the end of a wide spectrum (ne=480),
// not just across the first handful of lines.
func TestSynthesizeVariesAcrossFullSpectrum(t *testing.T) {
	var sf ScaleFactors
	for i := range sf {
		sf[i] = float64(i) * 0.5 // strictly increasing -> strictly decreasing gain
	}
	const ne = 480
	lines := make([]float64, ne)
	for i := range lines {
		lines[i] = 1
	}
	Synthesize(lines, sf, ne)

	if math.Abs(lines[ne-1]-lines[ne/2]) < 1e-6 {
		t.Fatalf("gain at end of spectrum (%v) indistinguishable from midpoint (%v); interpolation appears collapsed to one band", lines[ne-1], lines[ne/2])
	}
	if lines[ne-1] >= lines[0] {
		t.Errorf("gain should strictly decrease toward the high-frequency end: lines[0]=%v, lines[ne-1]=%v", lines[0], lines[ne-1])
	}
	// Spot-check several points spread across the spectrum are pairwise
	// distinct, confirming more than two bands are actually in effect.
	seen := map[float64]bool{}
	for _, i := range []int{0, ne / 8, ne / 4, ne / 2, 3 * ne / 4, ne - 1} {
		seen[math.Round(lines[i]*1e6)] = true
	}
	if len(seen) < 4 {
		t.Errorf("only %d distinct gains across sampled spectrum points, want at least 4", len(seen))
	}
}
