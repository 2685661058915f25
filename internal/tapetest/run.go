// SPDX-License-Identifier: EPL-2.0

// Package tapetest holds fixtures shared by the encoder, player and audio
// tests.
package tapetest

import (
	"io"
	"time"

	"github.com/ik5/tapepbx/tape"
)

// Run ticks enc until it requests end-of-file through h or limit ticks
// passed. Every tick result is returned, including empty ones.
func Run(enc tape.Encoder, h *tape.Handoff, limit int) []tape.Period {
	var out []tape.Period
	for range limit {
		if h.Finished() {
			break
		}
		out = append(out, enc.Tick())
	}
	return out
}

// NonZero drops the empty ticks from periods.
func NonZero(periods []tape.Period) []tape.Period {
	out := make([]tape.Period, 0, len(periods))
	for _, p := range periods {
		if p != tape.NoPeriod {
			out = append(out, p)
		}
	}
	return out
}

// PeriodList is an audio.PeriodReader that replays fixed durations.
type PeriodList struct {
	periods []time.Duration
	idx     int
	err     error
}

// NewPeriodList replays periods and then returns io.EOF.
func NewPeriodList(periods ...time.Duration) *PeriodList {
	return &PeriodList{periods: periods, err: io.EOF}
}

// NewRepeatedPeriods replays n copies of d.
func NewRepeatedPeriods(d time.Duration, n int) *PeriodList {
	periods := make([]time.Duration, n)
	for i := range periods {
		periods[i] = d
	}
	return NewPeriodList(periods...)
}

// WithError makes the list end with err instead of io.EOF.
func (l *PeriodList) WithError(err error) *PeriodList {
	l.err = err
	return l
}

func (l *PeriodList) NextPeriod() (time.Duration, error) {
	if l.idx >= len(l.periods) {
		return 0, l.err
	}
	d := l.periods[l.idx]
	l.idx++
	return d, nil
}

// Reset rewinds the list.
func (l *PeriodList) Reset() {
	l.idx = 0
}
