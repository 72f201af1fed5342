package lc3

import "testing"

func TestMultiDecoderIndependentChannels(t *testing.T) {
	md, err := NewMultiDecoder(2, 10000, 16000, false, PLCEnabled)
	if err != nil {
		t.Fatalf("NewMultiDecoder: %v", err)
	}
	if md.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", md.NumChannels())
	}

	p0 := make([]byte, 60)
	p1 := make([]byte, 60)
	for i := range p0 {
		p0[i] = byte(i)
		p1[i] = byte(255 - i)
	}

	out, _ := md.DecodeFrame([][]byte{p0, p1})
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	for i, samples := range out {
		if len(samples) == 0 {
			t.Errorf("channel %d produced no samples", i)
		}
	}
}

func TestMultiDecoderRejectsPayloadCountMismatch(t *testing.T) {
	md, err := NewMultiDecoder(2, 10000, 16000, false, PLCEnabled)
	if err != nil {
		t.Fatalf("NewMultiDecoder: %v", err)
	}
	if _, err := md.DecodeFrame([][]byte{{1, 2, 3}}); err == nil {
		t.Fatal("expected error on payload count mismatch")
	}
}

func TestNewMultiDecoderRejectsZeroChannels(t *testing.T) {
	if _, err := NewMultiDecoder(0, 10000, 16000, false, PLCEnabled); err == nil {
		t.Fatal("expected error for numChannels=0")
	}
}
