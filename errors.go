/*
DESCRIPTION
  errors.go defines the sentinel errors a Decoder's callers can check
  with errors.Is, covering the three error kinds spec.md §7 names.

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

// ErrInvalidConfig is returned at construction time for an unsupported
// (duration, sample rate, HR mode) combination.
var ErrInvalidConfig = errors.New("lc3: invalid decoder configuration")

// ErrBadFrame is returned from DecodeFrame when the bitstream's
// cursors crossed, a TNS/SNS range check failed, or the bandwidth field
// overran. The caller still receives concealed output; this error is
// informational and never fatal to subsequent frames.
var ErrBadFrame = errors.New("lc3: bad frame, concealed")

// ErrEndOfStream names the end of a frame stream. Nothing in this module
// returns it: the core decoder does not, and the container readers report
// the end of a stream with io.EOF.
var ErrEndOfStream = errors.New("lc3: end of stream")
