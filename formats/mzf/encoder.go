// SPDX-License-Identifier: EPL-2.0

package mzf

import (
	"fmt"
	"io"

	"github.com/ik5/tapepbx/tape"
	"go.uber.org/zap"
)

// Encoder plays an MZF image as a Sharp MZ tape signal.
type Encoder struct {
	env tape.Env
	log *zap.Logger

	stage Stage
	hw    tape.HalfWave
	// pulses or bytes still to send in the current stage
	left int

	header    Header
	headerSum Checksum
	fileSum   Checksum

	// byte cursor
	cur        byte
	loaded     bool
	leaderDone bool
	mask       byte
	hdrIdx     int
}

// New creates an encoder bound to env. Begin has to be called before Tick.
func New(env tape.Env) *Encoder {
	return &Encoder{
		env:   env,
		log:   env.Logger().With(zap.String("format", "mzf")),
		stage: StageDone,
	}
}

// Factory implements tape.Factory.
func Factory(env tape.Env) tape.Encoder {
	return New(env)
}

// Begin caches the header, computes its checksum and starts the long gap.
// If the header cannot be read, the session goes straight to end-of-file.
func (e *Encoder) Begin() error {
	e.stage = StageDone
	e.hw.Reset()

	if _, err := e.env.Image.Seek(0, io.SeekStart); err != nil {
		e.env.Handoff.EOF()
		return fmt.Errorf("%w: seek header: %w", tape.ErrStorageAccess, err)
	}

	if _, err := io.ReadFull(e.env.Image, e.header[:]); err != nil {
		e.env.Handoff.EOF()
		return fmt.Errorf("%w: read header: %w", tape.ErrStorageAccess, err)
	}

	e.headerSum = HeaderChecksum(&e.header)
	e.fileSum = 0

	e.log.Debug("header cached",
		zap.String("name", e.header.Name()),
		zap.Stringer("type", e.header.Type()),
		zap.Uint16("size", e.header.Size()),
		zap.Uint16("checksum", uint16(e.headerSum)))

	e.env.Handoff.Start(tape.IDMZF)
	e.enter(StageLongGap)
	return nil
}

// Tick emits the next half-period. Byte stages return tape.NoPeriod on the
// tick that finds their source exhausted; the following tick continues in
// the next stage.
func (e *Encoder) Tick() tape.Period {
	spec := &stages[e.stage]

	switch spec.kind {
	case kindPulses:
		p, done := e.hw.Advance(spec.pulse)
		if done {
			e.left--
			if e.left == 0 {
				e.enter(spec.next)
			}
		}
		return p

	case kindBytes:
		p := e.emitByte(spec.src)
		if p == tape.NoPeriod {
			e.enter(spec.next)
		}
		return p
	}

	e.env.Handoff.EOF()
	return tape.NoPeriod
}

// Abort drops the session.
func (e *Encoder) Abort() {
	e.stage = StageDone
}

// Stage is the current stage.
func (e *Encoder) Stage() Stage { return e.stage }

// Header is the cached tape header.
func (e *Encoder) Header() Header { return e.header }

// HeaderChecksum is the checksum sent after each header copy.
func (e *Encoder) HeaderChecksum() Checksum { return e.headerSum }

// FileChecksum is the checksum of the file bytes sent so far. It is only
// complete once the file stage has finished.
func (e *Encoder) FileChecksum() Checksum { return e.fileSum }

func (e *Encoder) enter(s Stage) {
	e.stage = s
	e.hw.Reset()
	e.loaded = false
	e.leaderDone = false
	e.mask = 0x80

	spec := &stages[s]
	e.left = spec.count

	switch spec.src {
	case srcHeader:
		e.hdrIdx = 0
	case srcFile:
		e.left = int(e.header.Size())
		e.fileSum = 0
		if _, err := e.env.Image.Seek(HeaderSize, io.SeekStart); err != nil {
			e.log.Warn("cannot position file body", zap.Error(err))
			e.left = 0
		}
	}

	e.log.Debug("stage", zap.Stringer("stage", s), zap.Int("count", e.left))
}

// emitByte sends the current byte: one long leader pulse, then eight data
// pulses from the most significant bit down. It loads the next byte when
// the previous one is done and returns tape.NoPeriod when there is none.
func (e *Encoder) emitByte(src byteSource) tape.Period {
	if !e.loaded {
		if !e.load(src) {
			return tape.NoPeriod
		}
		e.leaderDone = false
		e.mask = 0x80
	}

	if !e.leaderDone {
		p, done := e.hw.Advance(Long)
		if done {
			e.leaderDone = true
		}
		return p
	}

	pulse := Short
	if e.cur&e.mask != 0 {
		pulse = Long
	}

	p, done := e.hw.Advance(pulse)
	if done {
		e.mask >>= 1
		if e.mask == 0 {
			e.loaded = false
		}
	}
	return p
}

func (e *Encoder) load(src byteSource) bool {
	if e.left == 0 {
		return false
	}

	switch src {
	case srcHeader:
		e.cur = e.header[e.hdrIdx]
		e.hdrIdx++

	case srcFile:
		b, err := e.env.Image.ReadByte()
		if err != nil {
			if err != io.EOF {
				e.log.Warn("file body read failed", zap.Error(err))
			}
			e.log.Debug("file body ended early", zap.Int("missing", e.left))
			e.left = 0
			return false
		}
		e.cur = b
		e.fileSum.Add(b)

	case srcHeaderSum, srcFileSum:
		sum := e.fileSum
		if src == srcHeaderSum {
			sum = e.headerSum
		}
		hi, lo := sum.Bytes()
		e.cur = hi
		if e.left == 1 {
			e.cur = lo
		}

	default:
		return false
	}

	e.left--
	e.loaded = true
	return true
}
