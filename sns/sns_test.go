package sns

import (
	"math"
	"testing"

	"github.com/ausocean/lc3/bits"
	"github.com/ausocean/lc3/tables"
)

func TestReadProducesFiniteScaleFactors(t *testing.T) {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i * 37)
	}
	r := bits.NewReader(buf)
	sf, err := Read(r)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, v := range sf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sf[%d] = %v, not finite", i, v)
		}
	}
}

func TestNormaliseAndGainUnitNorm(t *testing.T) {
	vec := []int{3, 0, 4, 0, 0, 0, 0, 0, 0, 0}
	out := normaliseAndGain(vec, Shape1, 0)
	var sumSq float64
	for _, v := range out {
		sumSq += v * v
	}
	g := 1.0
	// gain index 0 of shape1's table.
	if gains := tables.VQGains[Shape1]; len(gains) > 0 {
		g = gains[0]
	}
	want := g * g
	if math.Abs(sumSq-want) > 1e-9 {
		t.Errorf("sum of squares = %v, want %v", sumSq, want)
	}
}
