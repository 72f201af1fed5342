/*
DESCRIPTION
  multidecoder.go provides MultiDecoder, a thin convenience wrapper
  looping independent per-channel Decoders, per spec.md §2's "multichannel
  is a loop over independent per-channel decoders sharing no state".

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package lc3

import "github.com/pkg/errors"

// MultiDecoder decodes several independent channels of the same
// configuration. Each channel owns its own Decoder and shares no state
// with the others, so channels may be decoded in any order (or in
// parallel, by the caller) without affecting one another.
type MultiDecoder struct {
	channels []*Decoder
}

// NewMultiDecoder constructs numChannels independent Decoders, all with
// the same (frameUs, srHz, hrMode, plcMode) configuration.
func NewMultiDecoder(numChannels int, frameUs, srHz int, hrMode bool, plcMode PLCMode) (*MultiDecoder, error) {
	if numChannels < 1 {
		return nil, errors.Wrap(ErrInvalidConfig, "numChannels must be >= 1")
	}
	channels := make([]*Decoder, numChannels)
	for i := range channels {
		d, err := NewDecoder(frameUs, srHz, hrMode, plcMode)
		if err != nil {
			return nil, err
		}
		channels[i] = d
	}
	return &MultiDecoder{channels: channels}, nil
}

// DecodeFrame decodes one frame per channel, in channel order. payloads
// must have exactly len(m.channels) entries; the returned slice has one
// sample buffer per channel, in the same order. The first per-channel
// error encountered (if any) is returned alongside the full result, as
// with Decoder.DecodeFrame, errors are informational, not fatal.
func (m *MultiDecoder) DecodeFrame(payloads [][]byte) ([][]float64, error) {
	if len(payloads) != len(m.channels) {
		return nil, errors.Errorf("lc3: MultiDecoder.DecodeFrame: got %d payloads, want %d", len(payloads), len(m.channels))
	}
	out := make([][]float64, len(m.channels))
	var firstErr error
	for i, d := range m.channels {
		samples, err := d.DecodeFrame(payloads[i])
		out[i] = samples
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return out, firstErr
}

// NumChannels returns the number of channels this MultiDecoder manages.
func (m *MultiDecoder) NumChannels() int { return len(m.channels) }
