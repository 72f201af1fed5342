package spectral

import (
	"math"
	"testing"

	"github.com/ausocean/lc3/bits"
	"github.com/ausocean/lc3/tables"
)

func TestDecodeProducesRequestedLineCount(t *testing.T) {
	tables.Init()
	buf := make([]byte, 80)
	for i := range buf {
		buf[i] = byte(i * 19)
	}
	r := bits.NewReader(buf)
	lines, err := Decode(r, 40)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(lines) != 40 {
		t.Fatalf("len(lines) = %d, want 40", len(lines))
	}
	for i, v := range lines {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("lines[%d] = %v, not finite", i, v)
		}
	}
}

func TestMagContextBuckets(t *testing.T) {
	cases := []struct {
		mag  float64
		want int
	}{
		{0, 0}, {1, 1}, {-1, 1}, {3, 2}, {-3, 2}, {4, 3}, {100, 3},
	}
	for _, c := range cases {
		if got := magContext(c.mag); got != c.want {
			t.Errorf("magContext(%v) = %d, want %d", c.mag, got, c.want)
		}
	}
}

func TestRefineResidualStopsWhenBitsExhausted(t *testing.T) {
	tables.Init()
	// A small buffer: the 8 lines decode cleanly but leave only 3 plain
	// bits for 5 nonzero lines, so residual refinement exhausts the
	// bitstream before it completes and must return cleanly rather than
	// block or panic.
	buf := []byte{0x12, 0x12, 0x12, 0x12, 0x12, 0x12, 0x12}
	r := bits.NewReader(buf)
	lines, err := Decode(r, 8)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(lines) != 8 {
		t.Fatalf("len(lines) = %d, want 8", len(lines))
	}
	if left := r.BitsLeft(); left != 0 {
		t.Fatalf("BitsLeft() = %d after refinement, want 0", left)
	}
}
