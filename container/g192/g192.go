/*
DESCRIPTION
  g192.go reads the G.192 bitstream envelope: each frame preceded by a
  16-bit indicator word (good/bad/redundancy) and a 16-bit bit count,
  followed by one 16-bit soft-bit word (0x007F/0x0081) per bit, per
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

// Package g192 reads the G.192 serial bitstream envelope format used to
// wrap LC3 frames with explicit good/bad/redundancy markers.
package g192

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Indicator is a G.192 frame-quality marker.
type Indicator uint16

const (
	IndicatorGood       Indicator = 0x6B21
	IndicatorBad        Indicator = 0x6B20
	IndicatorRedundancy Indicator = 0x6B22
)

// String implements fmt.Stringer for log messages.
func (ind Indicator) String() string {
	switch ind {
	case IndicatorGood:
		return "good"
	case IndicatorBad:
		return "bad"
	case IndicatorRedundancy:
		return "redundancy"
	default:
		return "unknown"
	}
}

const (
	softZero uint16 = 0x007F
	softOne  uint16 = 0x0081
)

// ErrBadIndicator is returned when a frame's indicator word is none of
// Good, Bad or Redundancy.
var ErrBadIndicator = errors.New("g192: unrecognised indicator")

// Frame is one decoded G.192 envelope record: the quality indicator and
// the packed bits it carries. Bits is filled for every indicator, Bad
// and Redundancy frames included.
type Frame struct {
	Indicator Indicator
	Bits      []byte // packed MSB-first, len = ceil(bitCount/8)
	BitCount  int
}

// Reader iterates G.192 envelope records from an underlying stream.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Next reads the next envelope record, or io.EOF when the stream ends.
func (gr *Reader) Next() (Frame, error) {
	var ind uint16
	if err := binary.Read(gr.r, binary.LittleEndian, &ind); err != nil {
		return Frame{}, err
	}
	indicator := Indicator(ind)
	switch indicator {
	case IndicatorGood, IndicatorBad, IndicatorRedundancy:
	default:
		return Frame{}, ErrBadIndicator
	}

	var count uint16
	if err := binary.Read(gr.r, binary.LittleEndian, &count); err != nil {
		return Frame{}, errors.Wrap(err, "g192: reading bit count")
	}

	packed := make([]byte, (int(count)+7)/8)
	for i := 0; i < int(count); i++ {
		var soft uint16
		if err := binary.Read(gr.r, binary.LittleEndian, &soft); err != nil {
			return Frame{}, errors.Wrap(err, "g192: reading soft bit")
		}
		if soft == softOne {
			packed[i/8] |= 0x80 >> uint(i%8)
		}
	}

	return Frame{Indicator: indicator, Bits: packed, BitCount: int(count)}, nil
}
