// SPDX-License-Identifier: EPL-2.0

package caq

import (
	"io"

	"github.com/ik5/tapepbx/tape"
	"go.uber.org/zap"
)

// Half-period timings in microseconds. A mark (one) is a shorter wave than a
// space (zero).
const (
	MarkHalf  tape.Period = 272
	SpaceHalf tape.Period = 544
)

// BaudRate is the rate CAQ playback always runs at.
const BaudRate = 600

// HalvesPerBit is the number of half-periods each bit is sent as (two full
// wave cycles).
const HalvesPerBit = 4

// BitsPerByte counts the start bit, eight data bits and two stop bits.
const BitsPerByte = 11

// State is the position within the framing of the current byte.
type State uint8

const (
	StateStartBit State = iota
	StateDataBits
	StateStopBit1
	StateStopBit2
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStartBit:
		return "start-bit"
	case StateDataBits:
		return "data-bits"
	case StateStopBit1:
		return "stop-bit-1"
	case StateStopBit2:
		return "stop-bit-2"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Encoder plays a CAQ image as Aquarius serial cassette signal.
type Encoder struct {
	env tape.Env
	log *zap.Logger

	state State

	cur    byte
	loaded bool
	// data bit index, most significant first
	bit int8

	halvesLeft int
	half       tape.Period

	savedBaud  int
	overridden bool

	sent int
}

// New creates an encoder bound to env.
func New(env tape.Env) *Encoder {
	return &Encoder{
		env:   env,
		log:   env.Logger().With(zap.String("format", "caq")),
		state: StateDone,
	}
}

// Factory implements tape.Factory.
func Factory(env tape.Env) tape.Encoder {
	return New(env)
}

// Begin rewinds the image and forces the shared baud rate to 600. The rate
// configured before the first Begin is restored when the session ends, even
// if Begin is called again in between.
func (e *Encoder) Begin() error {
	e.state = StateStartBit
	e.loaded = false
	e.bit = 7
	e.halvesLeft = 0
	e.half = SpaceHalf
	e.sent = 0

	if !e.overridden && e.env.Settings != nil {
		e.savedBaud = e.env.Settings.BaudRate()
		e.env.Settings.SetBaudRate(BaudRate)
		e.overridden = true
		e.log.Debug("baud rate overridden",
			zap.Int("saved", e.savedBaud), zap.Int("baud", BaudRate))
	}

	if _, err := e.env.Image.Seek(0, io.SeekStart); err != nil {
		e.log.Warn("cannot rewind image", zap.Error(err))
	}

	e.env.Handoff.Start(tape.IDCAQ)
	return nil
}

// Tick emits the next half-period. All four halves of a bit are sent before
// the next bit or byte is looked at.
func (e *Encoder) Tick() tape.Period {
	if e.halvesLeft > 0 {
		e.halvesLeft--
		return e.half
	}

	if !e.loaded && e.state != StateDone {
		b, err := e.env.Image.ReadByte()
		if err != nil {
			if err != io.EOF {
				e.log.Warn("read failed", zap.Error(err))
			}
			e.state = StateDone
		} else {
			e.cur = b
			e.loaded = true
			e.state = StateStartBit
			e.bit = 7
		}
	}

	switch e.state {
	case StateStartBit:
		e.beginBit(false)
		e.state = StateDataBits

	case StateDataBits:
		e.beginBit((e.cur>>uint(e.bit))&0x01 != 0)
		e.bit--
		if e.bit < 0 {
			e.state = StateStopBit1
		}

	case StateStopBit1:
		e.beginBit(true)
		e.state = StateStopBit2

	case StateStopBit2:
		e.beginBit(true)
		e.loaded = false
		e.state = StateStartBit
		e.sent++

	default:
		e.restoreBaud()
		e.env.Handoff.EOF()
		return tape.NoPeriod
	}

	e.halvesLeft--
	return e.half
}

// Abort drops the session and restores the baud rate right away.
func (e *Encoder) Abort() {
	e.state = StateDone
	e.halvesLeft = 0
	e.restoreBaud()
}

// State is the current framing state.
func (e *Encoder) State() State { return e.state }

// Sent is the number of bytes fully sent in this session.
func (e *Encoder) Sent() int { return e.sent }

func (e *Encoder) beginBit(one bool) {
	e.half = SpaceHalf
	if one {
		e.half = MarkHalf
	}
	e.halvesLeft = HalvesPerBit
}

func (e *Encoder) restoreBaud() {
	if !e.overridden {
		return
	}

	e.env.Settings.SetBaudRate(e.savedBaud)
	e.overridden = false
	e.log.Debug("baud rate restored", zap.Int("baud", e.savedBaud), zap.Int("bytes", e.sent))
}
