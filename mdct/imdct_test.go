package mdct

import (
	"math"
	"testing"
)

func TestSynthesizeProducesNSSamples(t *testing.T) {
	ns, nd := 480, 300
	st := NewState(ns, nd)
	coeffs := make([]float64, ns)
	coeffs[1] = 1
	out := st.Synthesize(coeffs, 0)
	if len(out) != ns {
		t.Fatalf("len(out) = %d, want %d", len(out), ns)
	}
}

func TestSynthesizeZerosStayNearZero(t *testing.T) {
	ns, nd := 160, 100
	st := NewState(ns, nd)
	coeffs := make([]float64, ns)
	out := st.Synthesize(coeffs, 0)
	for i, v := range out {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("out[%d] = %v, want ~0 for zero input", i, v)
		}
	}
}

func TestSynthesizeTwoFramesStable(t *testing.T) {
	ns, nd := 240, 150
	st := NewState(ns, nd)
	coeffs := make([]float64, ns)
	coeffs[4] = 0.5

	first := st.Synthesize(coeffs, 0)
	second := st.Synthesize(coeffs, 0)

	for _, v := range append(first, second...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite output sample: %v", v)
		}
	}
}
