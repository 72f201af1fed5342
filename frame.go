/*
DESCRIPTION
  frame.go validates a frame's byte budget against spec.md §6's bounds
  and resolves a (duration, sample rate, HR mode) triple to the
  tables.FrameConfig the rest of the pipeline is sized from.

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

import (
	"github.com/ausocean/lc3/tables"
	"github.com/pkg/errors"
)

const (
	maxBytesHR = 625
	maxBytes   = 400
)

// validateFrameBytes checks nbytes against spec.md §6's per-mode bound:
// "1 <= nbytes <= 625 in HR, <= 400 otherwise".
func validateFrameBytes(nbytes int, hrMode bool) bool {
	if nbytes < 1 {
		return false
	}
	if hrMode {
		return nbytes <= maxBytesHR
	}
	return nbytes <= maxBytes
}

// resolveConfig looks up the FrameConfig for (dt, sr, hrMode), wrapping
// tables.Config's error in ErrInvalidConfig.
func resolveConfig(dt tables.Duration, sr tables.SampleRate, hrMode bool) (*tables.FrameConfig, error) {
	cfg, err := tables.Config(dt, sr, hrMode)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return cfg, nil
}
