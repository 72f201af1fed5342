package lc3

import (
	"testing"

	"github.com/ausocean/lc3/tables"
)

func TestValidateFrameBytes(t *testing.T) {
	cases := []struct {
		nbytes int
		hrMode bool
		want   bool
	}{
		{0, false, false},
		{1, false, true},
		{400, false, true},
		{401, false, false},
		{625, true, true},
		{626, true, false},
	}
	for _, c := range cases {
		if got := validateFrameBytes(c.nbytes, c.hrMode); got != c.want {
			t.Errorf("validateFrameBytes(%d, %v) = %v, want %v", c.nbytes, c.hrMode, got, c.want)
		}
	}
}

func TestResolveConfigUnsupportedCombination(t *testing.T) {
	tables.Init()
	if _, err := resolveConfig(tables.Dur10ms, tables.SampleRate(11025), false); err == nil {
		t.Fatal("resolveConfig with an unsupported sample rate should error")
	}
}

func TestResolveConfigSupportedCombination(t *testing.T) {
	tables.Init()
	cfg, err := resolveConfig(tables.Dur10ms, tables.SR48k, false)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.NS != 480 {
		t.Errorf("cfg.NS = %d, want 480", cfg.NS)
	}
}
