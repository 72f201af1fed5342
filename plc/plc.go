/*
DESCRIPTION
  plc.go implements Packet Loss Concealment: an LFSR-driven spectral-line
  synthesiser that substitutes a fading, sign-randomised copy of the
  last good frame's spectral lines whenever the current frame is marked
  bad, per spec.md §4.7.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package plc implements spectral-domain packet loss concealment.
package plc

// seedInit is the LFSR's reset value, per spec.md §4.7.
const seedInit uint32 = 24607

// Next advances the PLC LFSR by one step: seed = (16831 + 12821*seed) &
// 0xffff.
func Next(seed uint32) uint32 {
	return (16831 + 12821*seed) & 0xffff
}

// State is PLC's persistent concealment state: the LFSR seed, the
// consecutive-bad-frame count, the current fade factor, and the last
// good frame's spectral lines.
type State struct {
	seed      uint32
	count     int
	alpha     float64
	lastLines []float64
}

// NewState returns a State reset to spec.md §4.7's initial conditions.
func NewState() *State {
	return &State{seed: seedInit, count: 0, alpha: 1}
}

// Good records a successfully decoded frame's spectral lines and resets
// the concealment count and fade factor, per spec.md §4.7's "on first
// good frame after loss, reset count=1, alpha=1".
func (s *State) Good(lines []float64) {
	s.lastLines = append(s.lastLines[:0:0], lines...)
	s.count = 1
	s.alpha = 1
}

// Conceal synthesises ne spectral lines (ne == len of the last good
// frame's lines) for a bad frame, advancing the fade factor and LFSR.
// It returns nil if no good frame has ever been recorded.
func (s *State) Conceal() []float64 {
	if s.lastLines == nil {
		return nil
	}

	var k float64
	switch {
	case s.count < 4:
		k = 1.0
	case s.count < 8:
		k = 0.9
	default:
		k = 0.85
	}
	s.alpha *= k

	out := make([]float64, len(s.lastLines))
	for i, x := range s.lastLines {
		s.seed = Next(s.seed)
		sign := 1.0
		if s.seed&0x8000 != 0 {
			sign = -1.0
		}
		out[i] = s.alpha * sign * x
	}
	s.count++
	return out
}

// Alpha returns the current fade factor, for diagnostics and tests.
func (s *State) Alpha() float64 { return s.alpha }

// Count returns the current consecutive-bad-frame count.
func (s *State) Count() int { return s.count }
