package sns

import (
	"reflect"
	"testing"
)

func TestEnumerateDeenumerateRoundTrip(t *testing.T) {
	cases := []struct {
		dim, k int
	}{
		{dimMain10, kShape1},
		{dimMain10, kShape0},
		{dimMain16, kShape2},
		{dimMain16, kShape3},
		{dimTail, kTail0},
	}

	for _, c := range cases {
		total := vSize(c.dim, c.k)
		if total == 0 {
			t.Fatalf("dim=%d k=%d: zero enumeration size", c.dim, c.k)
		}
		// Sample a spread of indices rather than every one (some spaces
		// are large); 0, 1, middle, and last are enough to catch
		// off-by-one errors in the recursive walk.
		samples := []uint64{0, 1, total / 2, total - 1}
		for _, idx := range samples {
			vec := Deenumerate(c.dim, c.k, idx)
			var sum int
			for _, v := range vec {
				sum += abs(v)
			}
			if sum != c.k {
				t.Fatalf("dim=%d k=%d idx=%d: L1 norm = %d, want %d (vec=%v)", c.dim, c.k, idx, sum, c.k, vec)
			}
			got := Enumerate(vec, c.k)
			if got != idx {
				t.Fatalf("dim=%d k=%d: Enumerate(Deenumerate(%d)) = %d, want %d", c.dim, c.k, idx, got, idx)
			}
		}
	}
}

func TestDeenumerateDistinctForDistinctIndices(t *testing.T) {
	dim, k := 4, 3
	total := vSize(dim, k)
	seen := map[string]bool{}
	for idx := uint64(0); idx < total; idx++ {
		vec := Deenumerate(dim, k, idx)
		key := reflect.ValueOf(vec).Interface()
		_ = key
		s := ""
		for _, v := range vec {
			s += string(rune('a' + v + 16))
		}
		if seen[s] {
			t.Fatalf("duplicate vector %v at idx %d", vec, idx)
		}
		seen[s] = true
	}
	if uint64(len(seen)) != total {
		t.Fatalf("got %d distinct vectors, want %d", len(seen), total)
	}
}
