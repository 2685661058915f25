// SPDX-License-Identifier: EPL-2.0

package tape

import "time"

// Period is the length of one half-wave in microseconds.
//
// The zero value is not a real half-period. It tells the caller that the
// current state produced nothing and the encoder has to be ticked again.
type Period uint16

// NoPeriod is the in-band "re-invoke" signal.
const NoPeriod Period = 0

// Duration converts p into a time.Duration.
func (p Period) Duration() time.Duration {
	return time.Duration(p) * time.Microsecond
}

// Pulse is one logical bit period made of an up half followed by a down half.
// The halves may differ in length to match the physical recording.
type Pulse struct {
	Up   Period
	Down Period
}

// Length is the duration of the full pulse.
func (p Pulse) Length() time.Duration {
	return p.Up.Duration() + p.Down.Duration()
}

// HalfWave emits a pulse one half at a time.
//
// Callers invoke Advance exactly twice per pulse: the first call yields the
// up half and reports false, the second yields the down half and reports true.
type HalfWave struct {
	down bool
}

// Advance returns the duration of the next half of p and whether the pulse
// is now complete.
func (h *HalfWave) Advance(p Pulse) (Period, bool) {
	if !h.down {
		h.down = true
		return p.Up, false
	}

	h.down = false
	return p.Down, true
}

// Reset makes the next Advance start a fresh pulse.
func (h *HalfWave) Reset() {
	h.down = false
}

// Pending reports whether the up half was emitted and the down half is due.
func (h *HalfWave) Pending() bool {
	return h.down
}
