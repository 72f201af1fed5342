/*
DESCRIPTION
  lc3bin.go reads the LC3 binary container format: a little-endian
  header (magic, size, sample rate, bitrate, channel count, frame
  duration, error-protection mode, sample counts) followed by a
  sequence of (uint16 nBytes, nBytes bytes) frame records, per
  spec.md §6.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lc3bin reads the ".lc3" binary container: a fixed header
// followed by a sequence of length-prefixed frame payloads.
package lc3bin

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Magic is the two-byte little-endian magic value every LC3 binary
// file starts with.
const Magic = 0xCC1C

// minHeaderSize is the fixed-field header length before the optional
// HR-mode extension.
const minHeaderSize = 18

// ErrBadMagic is returned when a stream does not start with Magic.
var ErrBadMagic = errors.New("lc3bin: bad magic")

// Header is the LC3 binary file header, per spec.md §6.
type Header struct {
	HeaderSize    uint16
	SRHz100       uint16 // sample rate / 100
	BitrateBps100 uint16 // bitrate / 100
	Channels      uint16
	FrameUs10     uint16 // frame duration / 10, in microseconds
	EPMode        uint16 // must be 0 for this core
	NSamplesLow   uint16
	NSamplesHigh  uint16
	HRMode        uint16 // present only if HeaderSize > minHeaderSize
}

// SampleRateHz returns the header's sample rate in Hz.
func (h Header) SampleRateHz() int { return int(h.SRHz100) * 100 }

// FrameMicros returns the header's frame duration in microseconds.
func (h Header) FrameMicros() int { return int(h.FrameUs10) * 10 }

// NSamples returns the total sample count the header declares, as a
// 32-bit value assembled from its low/high halves.
func (h Header) NSamples() uint32 {
	return uint32(h.NSamplesHigh)<<16 | uint32(h.NSamplesLow)
}

// ReadHeader reads and validates the fixed header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var magic uint16
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return Header{}, errors.Wrap(err, "lc3bin: reading magic")
	}
	if magic != Magic {
		return Header{}, ErrBadMagic
	}

	var h Header
	fields := []*uint16{
		&h.HeaderSize, &h.SRHz100, &h.BitrateBps100, &h.Channels,
		&h.FrameUs10, &h.EPMode, &h.NSamplesLow, &h.NSamplesHigh,
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return Header{}, errors.Wrap(err, "lc3bin: reading header field")
		}
	}

	if h.HeaderSize > minHeaderSize {
		if err := binary.Read(r, binary.LittleEndian, &h.HRMode); err != nil {
			return Header{}, errors.Wrap(err, "lc3bin: reading hrMode extension")
		}
	}

	return h, nil
}

// Reader iterates the length-prefixed frame records following the
// header.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader over r, which must be positioned
// immediately after the header (as ReadHeader leaves it).
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Next reads the next frame's payload, or io.EOF when the stream ends.
func (fr *Reader) Next() ([]byte, error) {
	var n uint16
	if err := binary.Read(fr.r, binary.LittleEndian, &n); err != nil {
		return nil, err // io.EOF propagates unwrapped for callers to detect end of stream
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(fr.r, buf); err != nil {
		return nil, errors.Wrap(err, "lc3bin: reading frame payload")
	}
	return buf, nil
}
