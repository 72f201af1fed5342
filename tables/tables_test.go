package tables

import "testing"

func TestConfig10ms48k(t *testing.T) {
	cfg, err := Config(Dur10ms, SR48k, false)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.NS != 480 {
		t.Errorf("NS = %d, want 480", cfg.NS)
	}
}

func TestConfigUnsupported(t *testing.T) {
	if _, err := Config(Dur10ms, SR96k, false); err == nil {
		t.Errorf("expected error for 96kHz non-HR, got nil")
	}
	if _, err := Config(Dur10ms, SR96k, true); err != nil {
		t.Errorf("Config(10ms, 96kHz, HR): %v", err)
	}
}

func TestAllStandardSizesPresent(t *testing.T) {
	want := map[int]bool{
		20: true, 40: true, 60: true, 80: true, 120: true, 160: true,
		180: true, 240: true, 320: true, 360: true, 480: true, 960: true,
	}
	Init()
	for k, cfg := range configs {
		_ = k
		delete(want, cfg.NS)
	}
	if len(want) != 0 {
		t.Errorf("missing expected NS values: %v", want)
	}
}

func TestMaxBandwidth(t *testing.T) {
	if MaxBandwidth(SR8k, false) != BwNB {
		t.Errorf("MaxBandwidth(8k) = %v, want NB", MaxBandwidth(SR8k, false))
	}
	if MaxBandwidth(SR48k, false) != BwFB {
		t.Errorf("MaxBandwidth(48k) = %v, want FB", MaxBandwidth(SR48k, false))
	}
	if MaxBandwidth(SR96k, true) != BwUBHR {
		t.Errorf("MaxBandwidth(96k,HR) = %v, want UB_HR", MaxBandwidth(SR96k, true))
	}
}

func TestBwBitsZeroInHR(t *testing.T) {
	if BwBits(BwFB, true) != 0 {
		t.Errorf("BwBits in HR mode should be 0")
	}
	if got := BwBits(BwFB, false); got != 3 {
		t.Errorf("BwBits(FB) = %d, want 3", got)
	}
}

func TestSNSBandEdgesMonotonic(t *testing.T) {
	edges := SNSBandEdges(400)
	if len(edges) != numSNSBands+1 {
		t.Fatalf("len(edges) = %d, want %d", len(edges), numSNSBands+1)
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] < edges[i-1] {
			t.Fatalf("edges not monotonic at %d: %v -> %v", i, edges[i-1], edges[i])
		}
	}
	if edges[0] != 0 || edges[numSNSBands] != 400 {
		t.Errorf("edges[0]=%d edges[last]=%d, want 0 and 400", edges[0], edges[numSNSBands])
	}
}

func TestPVQSizeBaseCases(t *testing.T) {
	Init()
	if PVQSize[1][0] != 1 {
		t.Errorf("PVQSize[1][0] = %d, want 1", PVQSize[1][0])
	}
	if PVQSize[1][3] != 2 {
		t.Errorf("PVQSize[1][3] = %d, want 2", PVQSize[1][3])
	}
	// dimension 2, norm 1: (+-1,0) and (0,+-1) => 4 vectors.
	if PVQSize[2][1] != 4 {
		t.Errorf("PVQSize[2][1] = %d, want 4", PVQSize[2][1])
	}
}

func TestDCT16Orthonormal(t *testing.T) {
	Init()
	var sum float64
	for i := 0; i < 16; i++ {
		sum += DCT16[0][i] * DCT16[0][i]
	}
	if sum < 0.9 || sum > 1.1 {
		t.Errorf("DCT16 row 0 not normalized: sum sq = %v", sum)
	}
}

func TestSincKernelSumsToOne(t *testing.T) {
	k := SincKernel(0, 8)
	var sum float64
	for _, v := range k {
		sum += v
	}
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("SincKernel sum = %v, want ~1", sum)
	}
}
