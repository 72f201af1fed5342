/*
DESCRIPTION
  sizing.go derives the per-frame sizes (ns, ne, nd, nh, nt) from a frame
  duration, sample rate and high-resolution flag, and enumerates the
  (dt, sr) combinations the decoder supports.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tables holds the read-only tables the LC3 decode pipeline needs:
// frame sizing, SNS codebooks, TNS coefficients, LTPF filter banks and
// spectral coder models are built once, at Init (invoked transparently by
// Config), and never mutated afterward. SNS band edges are derived on
// demand per ne, FFT twiddles are built lazily per size by TwiddleTable
// and cached, and the MDCT windows are built by package mdct.
package tables

import (
	"fmt"
	"math"
	"sync"
)

// Duration is one of the four LC3 frame durations, expressed in tenths of
// a millisecond so it is usable as a map key and comparable value.
type Duration int

const (
	Dur2_5ms Duration = 25
	Dur5ms   Duration = 50
	Dur7_5ms Duration = 75
	Dur10ms  Duration = 100
)

// Durations lists every supported frame duration in ascending order.
var Durations = []Duration{Dur2_5ms, Dur5ms, Dur7_5ms, Dur10ms}

// Seconds returns the duration as a fraction of a second.
func (d Duration) Seconds() float64 { return float64(d) / 10000 }

// Ordinal returns d's position within Durations (0 for 2.5ms ... 3 for
// 10ms), used by the LTPF transition-length formula in spec.md §4.5.
func (d Duration) Ordinal() int {
	for i, x := range Durations {
		if x == d {
			return i
		}
	}
	return -1
}

// SampleRate is a decoder output sample rate in Hz. High-resolution
// streams reuse the 48000/96000 values together with the hrMode flag
// rather than introducing distinct rate constants, per spec.md §3.
type SampleRate int

const (
	SR8k  SampleRate = 8000
	SR16k SampleRate = 16000
	SR24k SampleRate = 24000
	SR32k SampleRate = 32000
	SR48k SampleRate = 48000
	SR96k SampleRate = 96000
)

// SampleRates lists every supported base sample rate; SR96k is only valid
// combined with hrMode.
var SampleRates = []SampleRate{SR8k, SR16k, SR24k, SR32k, SR48k, SR96k}

// FrameConfig names one supported (duration, sample rate, HR) combination
// and the sizes derived from it.
type FrameConfig struct {
	Dur    Duration
	SR     SampleRate
	HRMode bool

	NS int // samples per frame
	NE int // encoded spectral lines (<= NS)
	ND int // MDCT delay-buffer length
	NH int // LTPF history length
	NT int // LTPF transition length
	NO int // MDCT overlap (window tail length on each side)
}

var (
	once     sync.Once
	configs  map[key]*FrameConfig
	initDone bool
)

type key struct {
	dt Duration
	sr SampleRate
	hr bool
}

// Init builds every process-global table. It is idempotent and safe for
// concurrent callers; Config calls it automatically, so callers of Config
// need not invoke it directly unless they want to pay the (small,
// one-time) initialisation cost up front. Code that reads the exported
// table variables directly must call Init first.
func Init() {
	once.Do(func() {
		buildSizing()
		buildBands()
		buildSNS()
		buildTNS()
		buildLTPF()
		buildSpectral()
		initDone = true
	})
}

func buildSizing() {
	configs = make(map[key]*FrameConfig)
	for _, sr := range SampleRates {
		if sr == SR96k {
			continue // SR96k only exists in HR mode; added below.
		}
		for _, dt := range Durations {
			addConfig(dt, sr, false)
		}
	}
	// HR-mode rows: 48kHz-HR and 96kHz-HR, per spec.md §3.
	for _, sr := range []SampleRate{SR48k, SR96k} {
		for _, dt := range Durations {
			addConfig(dt, sr, true)
		}
	}
}

func addConfig(dt Duration, sr SampleRate, hr bool) {
	ns := int(math.Round(dt.Seconds() * float64(sr)))

	// Overlap: one eighth of ns, the MDCT window's tail on
	// each side, consistent with spec.md §4.6's "ns + 2*overlap" window
	// length and the nd = ns/2 + overlap delay-buffer size in §3.
	overlap := ns / 8
	if overlap < 1 {
		overlap = 1
	}
	nd := ns/2 + overlap

	// History length: 18ms of audio, rounded up to a whole number of
	// frames, per spec.md §3 ("history, 18ms aligned on ns").
	target := int(math.Ceil(0.018 * float64(sr)))
	nh := ((target + ns - 1) / ns) * ns
	if nh == 0 {
		nh = ns
	}

	// LTPF transition length, per spec.md §4.5: nt = ns/(1+dt_ordinal).
	nt := ns / (1 + dt.Ordinal())
	if nt < 1 {
		nt = 1
	}

	cfg := &FrameConfig{
		Dur: dt, SR: sr, HRMode: hr,
		NS: ns, NE: ns, ND: nd, NH: nh, NT: nt, NO: overlap,
	}
	configs[key{dt, sr, hr}] = cfg
}

// Config returns the FrameConfig for (dt, sr, hrMode), or an error if that
// combination is unsupported.
func Config(dt Duration, sr SampleRate, hrMode bool) (*FrameConfig, error) {
	Init()
	cfg, ok := configs[key{dt, sr, hrMode}]
	if !ok {
		return nil, fmt.Errorf("tables: unsupported frame configuration dt=%v sr=%v hrMode=%v", dt, sr, hrMode)
	}
	return cfg, nil
}
