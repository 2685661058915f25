// SPDX-License-Identifier: EPL-2.0

package tapepbx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/tapepbx/audio"
	"github.com/ik5/tapepbx/formats/aiff"
	"github.com/ik5/tapepbx/formats/wav"
	"github.com/ik5/tapepbx/player"
	"github.com/ik5/tapepbx/tape"
	"go.uber.org/zap"
)

// ErrUnknownOutput is returned when the output container cannot be chosen.
var ErrUnknownOutput = errors.New("unknown output format")

// Options controls rendering.
type Options struct {
	SampleRate int
	BitDepth   int
	Amplitude  float32
	// Format is "wav" or "aiff". When empty the output file extension decides.
	Format string
}

// DefaultOptions renders 16 bit mono at 44.1kHz.
func DefaultOptions() Options {
	return Options{
		SampleRate: 44100,
		BitDepth:   16,
		Amplitude:  0.75,
	}
}

// Result describes a rendered file.
type Result struct {
	Samples     int
	HalfPeriods int
	Duration    time.Duration
}

type writeFunc func(ws io.WriteSeeker, src audio.Source, bitDepth int) (int, error)

var writers = map[string]writeFunc{
	"wav":  wav.Write,
	"aiff": aiff.Write,
	"aif":  aiff.Write,
}

// Render plays the session loaded in p to completion and writes it to ws.
//
// The context is checked between half-periods; cancelling it stops the
// session, which also undoes any setting the encoder overrode.
func Render(ctx context.Context, p *player.Player, ws io.WriteSeeker, opts Options) (Result, error) {
	write, ok := writers[strings.ToLower(opts.Format)]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOutput, opts.Format)
	}

	wave, err := audio.NewSquareWave(&ctxReader{ctx: ctx, src: p}, opts.SampleRate, opts.Amplitude)
	if err != nil {
		return Result{}, fmt.Errorf("%w", err)
	}

	n, err := write(ws, wave, opts.BitDepth)
	stats := p.Stats()
	res := Result{
		Samples:     n,
		HalfPeriods: stats.HalfPeriods,
		Duration:    stats.Duration,
	}
	if err != nil {
		p.Stop()
		return res, fmt.Errorf("render: %w", err)
	}
	return res, nil
}

// RenderFile renders the tape image at imagePath into outPath.
func RenderFile(ctx context.Context, imagePath, outPath string, settings tape.Settings, opts Options, log *zap.Logger) (Result, error) {
	if opts.Format == "" {
		opts.Format = strings.TrimPrefix(filepath.Ext(outPath), ".")
	}
	if _, ok := writers[strings.ToLower(opts.Format)]; !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOutput, opts.Format)
	}

	in, err := os.Open(imagePath)
	if err != nil {
		return Result{}, fmt.Errorf("%w", err)
	}
	defer in.Close()

	stream, err := tape.NewStream(in)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", imagePath, err)
	}

	p := player.New(nil, settings, log)
	if err := p.Load(imagePath, stream); err != nil {
		return Result{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		p.Stop()
		return Result{}, fmt.Errorf("%w", err)
	}

	res, err := Render(ctx, p, out, opts)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w", cerr)
	}
	return res, err
}

// ctxReader stops a period stream once its context is done.
type ctxReader struct {
	ctx context.Context
	src audio.PeriodReader
}

func (r *ctxReader) NextPeriod() (time.Duration, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.src.NextPeriod()
}
