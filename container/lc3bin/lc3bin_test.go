package lc3bin

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeHeader(buf *bytes.Buffer, h Header) {
	binary.Write(buf, binary.LittleEndian, uint16(Magic))
	binary.Write(buf, binary.LittleEndian, h.HeaderSize)
	binary.Write(buf, binary.LittleEndian, h.SRHz100)
	binary.Write(buf, binary.LittleEndian, h.BitrateBps100)
	binary.Write(buf, binary.LittleEndian, h.Channels)
	binary.Write(buf, binary.LittleEndian, h.FrameUs10)
	binary.Write(buf, binary.LittleEndian, h.EPMode)
	binary.Write(buf, binary.LittleEndian, h.NSamplesLow)
	binary.Write(buf, binary.LittleEndian, h.NSamplesHigh)
}

func TestReadHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := Header{
		HeaderSize: minHeaderSize, SRHz100: 480, BitrateBps100: 640,
		Channels: 1, FrameUs10: 1000, EPMode: 0, NSamplesLow: 100, NSamplesHigh: 0,
	}
	writeHeader(&buf, want)

	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if !cmp.Equal(got, want) {
		t.Fatalf("ReadHeader mismatch (-got +want):\n%s", cmp.Diff(got, want))
	}
	if got.SampleRateHz() != 48000 {
		t.Errorf("SampleRateHz() = %d, want 48000", got.SampleRateHz())
	}
	if got.FrameMicros() != 10000 {
		t.Errorf("FrameMicros() = %d, want 10000", got.FrameMicros())
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00, 0x00})
	if _, err := ReadHeader(buf); err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestReaderNextIteratesFrames(t *testing.T) {
	var buf bytes.Buffer
	frames := [][]byte{{1, 2, 3}, {4, 5}, {6}}
	for _, f := range frames {
		binary.Write(&buf, binary.LittleEndian, uint16(len(f)))
		buf.Write(f)
	}

	r := NewReader(&buf)
	for i, want := range frames {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("frame %d: Next: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("frame %d = %v, want %v", i, got, want)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("final Next() err = %v, want io.EOF", err)
	}
}
