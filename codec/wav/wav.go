/*
DESCRIPTION
  wav.go is a minimal, dependency-free RIFF/WAVE writer: it builds the
  44-byte canonical PCM header by hand and appends raw little-endian PCM
  bytes after it. cmd/lc3dec keeps this side by side with the
  github.com/go-audio/wav encoder, falling back to it when a caller
  wants decoded PCM written without pulling in go-audio's audio.Buffer
  machinery.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wav provides a minimal RIFF/WAVE PCM writer.
package wav

import (
	"encoding/binary"
	"fmt"
)

// PCMFormat is the WAVE format tag for uncompressed linear PCM.
const PCMFormat = 1

var (
	errInvalidFormat   = fmt.Errorf("wav: invalid or no format defined")
	errInvalidRate     = fmt.Errorf("wav: invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("wav: invalid or no number of channels defined")
	errInvalidBitDepth = fmt.Errorf("wav: invalid or no bit depth defined")
)

// Metadata describes the PCM format of a WAV file's contents.
type Metadata struct {
	AudioFormat int
	Channels    int
	SampleRate  int
	BitDepth    int
}

// WAV accumulates a RIFF/WAVE header plus raw PCM audio bytes.
type WAV struct {
	Metadata Metadata
	Audio    []byte
}

// Write builds the 44-byte canonical PCM header from w.Metadata, then
// appends p as the data chunk's payload. p must already be encoded as
// little-endian PCM samples at w.Metadata.BitDepth. The full header+data
// byte slice is left in w.Audio.
func (w *WAV) Write(p []byte) (n int, err error) {
	if w.Metadata.AudioFormat != PCMFormat { // TODO: support non-PCM format tags.
		return 0, errInvalidFormat
	}
	if w.Metadata.Channels == 0 {
		return 0, errInvalidChannels
	}
	if w.Metadata.SampleRate == 0 {
		return 0, errInvalidRate
	}
	if w.Metadata.BitDepth == 0 {
		return 0, errInvalidBitDepth
	}

	header := make([]byte, 44)

	copy(header[0:4], []byte("RIFF"))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(p)+44-8))
	copy(header[8:12], []byte("WAVE"))

	copy(header[12:16], []byte("fmt "))
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(w.Metadata.AudioFormat))
	binary.LittleEndian.PutUint16(header[22:24], uint16(w.Metadata.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(w.Metadata.SampleRate))

	byteRate := uint32((w.Metadata.SampleRate * w.Metadata.BitDepth * w.Metadata.Channels) / 8)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)

	blockAlign := uint16((w.Metadata.BitDepth * w.Metadata.Channels) / 8)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(w.Metadata.BitDepth))

	copy(header[36:40], []byte("data"))
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(p)))

	w.Audio = append(header, p...)
	return len(p) + 44, nil
}
