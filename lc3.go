/*
DESCRIPTION
  lc3.go implements the decoder orchestrator: it reads a frame's header
  fields in the order spec.md §4.8 specifies (bandwidth, TNS, SNS, LTPF
  params, spectrum), diverts to PLC when the bitstream is found bad, and
  runs synthesis in reverse (spectrum -> TNS synth -> SNS synth -> IMDCT
  -> LTPF synth -> output).

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lc3 implements an LC3/LC3plus audio decoder core: bitstream
// parsing, spectral noise shaping, temporal noise shaping, long-term
// post-filtering, mixed-radix IMDCT synthesis and packet loss
// concealment.
package lc3

import (
	"github.com/ausocean/lc3/bits"
	"github.com/ausocean/lc3/bwdet"
	"github.com/ausocean/lc3/ltpf"
	"github.com/ausocean/lc3/mdct"
	"github.com/ausocean/lc3/plc"
	"github.com/ausocean/lc3/sns"
	"github.com/ausocean/lc3/spectral"
	"github.com/ausocean/lc3/tables"
	"github.com/ausocean/lc3/tns"
	"github.com/ausocean/utils/logging"
)

// Log is the package-level logger used for frame-level diagnostics
// (bad-frame concealment, configuration warnings). It is nil by
// default; set it once at program start, as cmd/lc3dec does, to enable
// logging.
var Log logging.Logger

func warnf(msg string, args ...interface{}) {
	if Log == nil {
		return
	}
	Log.Warning(msg, args...)
}

// PLCMode selects whether a Decoder conceals bad frames.
type PLCMode int

const (
	PLCEnabled PLCMode = iota
	PLCDisabled
)

// Decoder holds one channel's persistent cross-frame state: the MDCT
// delay buffer, the LTPF history ring, and the PLC concealment state.
// A Decoder is not safe for concurrent use by multiple goroutines, but
// independent Decoders (e.g. one per channel) share no state and may
// run in parallel; see SPEC_FULL.md §7.
type Decoder struct {
	dt      tables.Duration
	sr      tables.SampleRate
	hrMode  bool
	plcMode PLCMode
	cfg     *tables.FrameConfig

	mdctState *mdct.State
	ltpfState *ltpf.State
	plcState  *plc.State
}

// NewDecoder constructs a Decoder for the given frame duration (in
// microseconds), sample rate (in Hz), HR-mode flag and PLC mode. All
// subsequent DecodeFrame calls on the returned Decoder must use frames
// consistent with this configuration, per spec.md §6.
func NewDecoder(frameUs int, srHz int, hrMode bool, plcMode PLCMode) (*Decoder, error) {
	tables.Init()

	dt, err := durationFromUs(frameUs)
	if err != nil {
		return nil, err
	}
	sr := tables.SampleRate(srHz)

	cfg, err := resolveConfig(dt, sr, hrMode)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		dt: dt, sr: sr, hrMode: hrMode, plcMode: plcMode, cfg: cfg,
		mdctState: mdct.NewState(cfg.NS, cfg.ND),
		ltpfState: ltpf.NewState(cfg.NH, cfg.NS),
		plcState:  plc.NewState(),
	}, nil
}

func durationFromUs(us int) (tables.Duration, error) {
	switch us {
	case 2500:
		return tables.Dur2_5ms, nil
	case 5000:
		return tables.Dur5ms, nil
	case 7500:
		return tables.Dur7_5ms, nil
	case 10000:
		return tables.Dur10ms, nil
	default:
		return 0, ErrInvalidConfig
	}
}

// DecodeFrame decodes one frame's payload into NS time-domain samples.
// On a bad frame it returns concealed (or silent, if no prior good
// frame exists) output alongside ErrBadFrame; this is informational,
// not fatal -- the Decoder's state remains valid for the next call.
func (d *Decoder) DecodeFrame(payload []byte) ([]float64, error) {
	if !validateFrameBytes(len(payload), d.hrMode) {
		return nil, ErrInvalidConfig
	}

	r := bits.NewReader(payload)

	bwRes := bwdet.Read(r, d.sr, d.hrMode)
	tnsFilters, tnsErr := tns.Read(r, d.dt, bwRes.Bandwidth)
	scaleFactors, snsErr := sns.Read(r)
	ltpfParams := ltpf.Read(r, len(payload), d.sr)

	bad := r.CheckError() || bwRes.Overrun || tnsErr != nil || snsErr != nil

	var lines []float64
	if !bad {
		var specErr error
		lines, specErr = spectral.Decode(r, d.cfg.NE)
		if specErr != nil {
			bad = true
		}
	}

	if bad && d.plcMode == PLCEnabled {
		lines = d.plcState.Conceal()
	}
	if lines == nil {
		lines = make([]float64, d.cfg.NE)
	}
	if !bad {
		d.plcState.Good(lines)
	}

	// Synthesis runs in reverse of the read order: spectrum -> TNS synth
	// -> SNS synth -> IMDCT -> LTPF synth -> output.
	tns.Synthesize(lines, tnsFilters)
	sns.Synthesize(lines, scaleFactors, d.cfg.NE)

	coeffs := make([]float64, d.cfg.NS)
	copy(coeffs, lines)

	samples := d.mdctState.Synthesize(coeffs, 0)

	ltpf.Synthesize(d.ltpfState, samples, ltpfParams, d.cfg)

	if bad {
		warnf("concealed bad frame", "nbytes", len(payload))
		return samples, ErrBadFrame
	}
	return samples, nil
}

// Config returns the Decoder's resolved frame configuration, mainly
// useful for callers sizing their own output buffers.
func (d *Decoder) Config() tables.FrameConfig { return *d.cfg }
