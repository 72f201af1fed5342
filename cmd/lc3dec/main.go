/*
DESCRIPTION
  lc3dec is a command-line LC3/LC3plus decoder: it reads a ".lc3"
  binary container (or, with -g192, a G.192-wrapped bitstream) and
  writes decoded PCM to a ".wav" file.

AUTHOR
  AusOcean Audio Team <audio@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements the lc3dec command-line decoder.
package main

import (
	"encoding/binary"
	"flag"
	"io"
	"math"
	"os"

	"github.com/ausocean/lc3"
	rawwav "github.com/ausocean/lc3/codec/wav"
	"github.com/ausocean/lc3/container/g192"
	"github.com/ausocean/lc3/container/lc3bin"
	"github.com/ausocean/utils/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logging related constants, following cmd/looper's convention.
const (
	logPath      = "lc3dec.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

const (
	bitDepth = 16
	pcmMax   = float64(1<<(bitDepth-1)) - 1
)

func main() {
	inPath := flag.String("in", "", "path to input .lc3 (or -g192 bitstream) file")
	outPath := flag.String("out", "out.wav", "path to output .wav file")
	g192Mode := flag.Bool("g192", false, "treat the input as a raw G.192 bitstream rather than an .lc3 container")
	raw := flag.Bool("raw", false, "write output with the hand-rolled RIFF writer instead of go-audio/wav")
	watch := flag.Bool("watch", false, "watch -in for changes and re-decode on each write")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, fileLog, logSuppress)
	lc3.Log = l

	if *inPath == "" {
		l.Fatal("missing -in path")
	}

	if err := decodeFile(*inPath, *outPath, *g192Mode, *raw, l); err != nil {
		l.Fatal("decode failed", "error", err)
	}

	if *watch {
		watchAndDecode(*inPath, *outPath, *g192Mode, *raw, l)
	}
}

// decodeFile decodes one LC3 input file to a WAV output file.
func decodeFile(inPath, outPath string, g192Mode, raw bool, l logging.Logger) error {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer out.Close()

	if g192Mode {
		return decodeG192(in, out, raw, l)
	}
	return decodeLC3Bin(in, out, raw, l)
}

func decodeLC3Bin(in io.Reader, out io.WriteSeeker, raw bool, l logging.Logger) error {
	hdr, err := lc3bin.ReadHeader(in)
	if err != nil {
		return errors.Wrap(err, "reading lc3bin header")
	}

	d, err := lc3.NewDecoder(hdr.FrameMicros(), hdr.SampleRateHz(), hdr.HRMode != 0, lc3.PLCEnabled)
	if err != nil {
		return errors.Wrap(err, "constructing decoder")
	}

	sink := newPCMSink(out, hdr.SampleRateHz(), int(hdr.Channels), raw)
	defer sink.Close()

	fr := lc3bin.NewReader(in)
	count := 0
	for {
		payload, err := fr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading frame")
		}
		if err := decodeAndWrite(d, payload, sink, hdr.SampleRateHz(), int(hdr.Channels), l); err != nil {
			return err
		}
		count++
	}
	l.Info("decode complete", "frames", count)
	return nil
}

func decodeG192(in io.Reader, out io.WriteSeeker, raw bool, l logging.Logger) error {
	// A bare G.192 stream carries no header; default to the most common
	// LC3 configuration (10ms @ 16kHz) when none is otherwise known.
	d, err := lc3.NewDecoder(10000, 16000, false, lc3.PLCEnabled)
	if err != nil {
		return errors.Wrap(err, "constructing decoder")
	}
	sink := newPCMSink(out, 16000, 1, raw)
	defer sink.Close()

	r := g192.NewReader(in)
	count := 0
	for {
		f, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading g192 frame")
		}
		payload := f.Bits
		if f.Indicator == g192.IndicatorBad || f.Indicator == g192.IndicatorRedundancy {
			payload = nil
		}
		if err := decodeAndWrite(d, payload, sink, 16000, 1, l); err != nil {
			return err
		}
		count++
	}
	l.Info("decode complete", "frames", count)
	return nil
}

func decodeAndWrite(d *lc3.Decoder, payload []byte, sink pcmSink, sr, channels int, l logging.Logger) error {
	var samples []float64
	var decErr error
	if payload != nil {
		samples, decErr = d.DecodeFrame(payload)
	} else {
		samples = make([]float64, d.Config().NS)
	}
	if decErr != nil {
		l.Warning("frame concealed", "error", decErr)
	}

	ints := make([]int, len(samples))
	for i, v := range samples {
		ints[i] = clampPCM(v)
	}
	if err := sink.WriteFrame(ints); err != nil {
		return errors.Wrap(err, "writing PCM")
	}
	return nil
}

// pcmSink abstracts over the two WAV encoding backends this command
// supports: github.com/go-audio/wav's streaming Encoder, and the
// package-local hand-rolled RIFF writer used with -raw.
type pcmSink interface {
	WriteFrame(samples []int) error
	Close() error
}

func newPCMSink(out io.WriteSeeker, sr, channels int, raw bool) pcmSink {
	if raw {
		return &rawSink{out: out, sr: sr, channels: channels}
	}
	return &goAudioSink{enc: gowav.NewEncoder(out, sr, bitDepth, channels, 1), sr: sr, channels: channels}
}

// goAudioSink writes PCM frames incrementally via go-audio/wav.
type goAudioSink struct {
	enc      *gowav.Encoder
	sr       int
	channels int
}

func (s *goAudioSink) WriteFrame(samples []int) error {
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{SampleRate: s.sr, NumChannels: s.channels},
		SourceBitDepth: bitDepth,
	}
	return s.enc.Write(buf)
}

func (s *goAudioSink) Close() error { return s.enc.Close() }

// rawSink accumulates PCM bytes in memory and writes a single
// hand-built RIFF/WAVE header plus data chunk on Close, since the
// header's sizes are only known once every frame has been seen.
type rawSink struct {
	out      io.Writer
	sr       int
	channels int
	pcm      []byte
}

func (s *rawSink) WriteFrame(samples []int) error {
	frame := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(frame[2*i:2*i+2], uint16(int16(v)))
	}
	s.pcm = append(s.pcm, frame...)
	return nil
}

func (s *rawSink) Close() error {
	w := &rawwav.WAV{Metadata: rawwav.Metadata{
		AudioFormat: rawwav.PCMFormat,
		Channels:    s.channels,
		SampleRate:  s.sr,
		BitDepth:    bitDepth,
	}}
	if _, err := w.Write(s.pcm); err != nil {
		return errors.Wrap(err, "building RIFF header")
	}
	_, err := s.out.Write(w.Audio)
	return err
}

func clampPCM(v float64) int {
	v *= pcmMax
	if v > pcmMax {
		v = pcmMax
	}
	if v < -pcmMax-1 {
		v = -pcmMax - 1
	}
	return int(math.Round(v))
}

// watchAndDecode re-runs decodeFile each time inPath is written to,
// using fsnotify -- the same library cmd/rv's config reload uses, here
// repurposed to drive batch re-decodes during interactive testing.
func watchAndDecode(inPath, outPath string, g192Mode, raw bool, l logging.Logger) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		l.Fatal("could not start watcher", "error", err)
	}
	defer w.Close()

	if err := w.Add(inPath); err != nil {
		l.Fatal("could not watch input file", "error", err)
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			l.Info("input changed, re-decoding", "path", inPath)
			if err := decodeFile(inPath, outPath, g192Mode, raw, l); err != nil {
				l.Error("re-decode failed", "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			l.Error("watcher error", "error", err)
		}
	}
}
