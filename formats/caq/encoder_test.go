// SPDX-License-Identifier: EPL-2.0

package caq

import (
	"slices"
	"testing"

	"github.com/ik5/tapepbx/internal/tapetest"
	"github.com/ik5/tapepbx/tape"
)

const halvesPerByte = HalvesPerBit * BitsPerByte

func session(data []byte, settings tape.Settings) (*Encoder, *tape.Handoff) {
	h := &tape.Handoff{}
	enc := New(tape.Env{
		Image:    tapetest.NewImage(data),
		Settings: settings,
		Handoff:  h,
	})
	return enc, h
}

// bits folds half-periods back into bits, four halves at a time.
func bits(t *testing.T, periods []tape.Period) []bool {
	t.Helper()

	if len(periods)%HalvesPerBit != 0 {
		t.Fatalf("%d half-periods do not form whole bits", len(periods))
	}

	out := make([]bool, 0, len(periods)/HalvesPerBit)
	for i := 0; i < len(periods); i += HalvesPerBit {
		group := periods[i : i+HalvesPerBit]
		for _, p := range group[1:] {
			if p != group[0] {
				t.Fatalf("bit %d mixes half-periods %v", i/HalvesPerBit, group)
			}
		}
		switch group[0] {
		case MarkHalf:
			out = append(out, true)
		case SpaceHalf:
			out = append(out, false)
		default:
			t.Fatalf("bit %d has half-period %d", i/HalvesPerBit, group[0])
		}
	}
	return out
}

// decode reads framed bytes back from bits.
func decode(t *testing.T, bs []bool) []byte {
	t.Helper()

	if len(bs)%BitsPerByte != 0 {
		t.Fatalf("%d bits do not form whole frames", len(bs))
	}

	out := make([]byte, 0, len(bs)/BitsPerByte)
	for i := 0; i < len(bs); i += BitsPerByte {
		frame := bs[i : i+BitsPerByte]
		if frame[0] {
			t.Fatalf("frame %d start bit is a mark", i/BitsPerByte)
		}
		if !frame[9] || !frame[10] {
			t.Fatalf("frame %d stop bits are not marks", i/BitsPerByte)
		}

		var b byte
		for _, one := range frame[1:9] {
			b <<= 1
			if one {
				b |= 1
			}
		}
		out = append(out, b)
	}
	return out
}

func TestEncoder_AllByteValues(t *testing.T) {
	t.Parallel()

	for v := range 256 {
		enc, h := session([]byte{byte(v)}, nil)
		if err := enc.Begin(); err != nil {
			t.Fatalf("Begin() error = %v", err)
		}

		ticks := tapetest.Run(enc, h, 1000)
		periods := tapetest.NonZero(ticks)
		if len(periods) != halvesPerByte {
			t.Fatalf("byte %#02x produced %d half-periods, want %d", v, len(periods), halvesPerByte)
		}

		got := decode(t, bits(t, periods))
		if len(got) != 1 || got[0] != byte(v) {
			t.Fatalf("byte %#02x decoded as % X", v, got)
		}
	}
}

func TestEncoder_Framing(t *testing.T) {
	t.Parallel()

	// 0x80: only the first data bit is set
	enc, h := session([]byte{0x80}, nil)
	_ = enc.Begin()

	got := bits(t, tapetest.NonZero(tapetest.Run(enc, h, 1000)))
	want := []bool{false, true, false, false, false, false, false, false, false, true, true}
	if !slices.Equal(got, want) {
		t.Errorf("bits = %v, want %v", got, want)
	}
}

func TestEncoder_Stream(t *testing.T) {
	t.Parallel()

	data := []byte("HELLO, AQUARIUS\x00\xFF")
	enc, h := session(data, nil)
	_ = enc.Begin()

	ticks := tapetest.Run(enc, h, 10000)
	if !h.Finished() {
		t.Fatal("session did not reach end-of-file")
	}

	periods := tapetest.NonZero(ticks)
	if len(periods) != len(data)*halvesPerByte {
		t.Fatalf("%d half-periods, want %d", len(periods), len(data)*halvesPerByte)
	}
	if got := decode(t, bits(t, periods)); !slices.Equal(got, data) {
		t.Errorf("decoded %q, want %q", got, data)
	}
	if enc.Sent() != len(data) {
		t.Errorf("Sent() = %d, want %d", enc.Sent(), len(data))
	}

	// the only empty tick is the one that requests end-of-file
	if ticks[len(ticks)-1] != tape.NoPeriod || len(ticks) != len(periods)+1 {
		t.Errorf("unexpected empty ticks: %d ticks for %d half-periods", len(ticks), len(periods))
	}
}

func TestEncoder_EmptyImage(t *testing.T) {
	t.Parallel()

	settings := tape.NewMemSettings(3850)
	enc, h := session(nil, settings)
	_ = enc.Begin()

	if settings.BaudRate() != BaudRate {
		t.Fatalf("BaudRate() during session = %d, want %d", settings.BaudRate(), BaudRate)
	}

	if p := enc.Tick(); p != tape.NoPeriod {
		t.Errorf("first Tick() = %d, want NoPeriod", p)
	}
	if !h.Finished() {
		t.Error("empty image did not request end-of-file")
	}
	if settings.BaudRate() != 3850 {
		t.Errorf("BaudRate() after end = %d, want 3850", settings.BaudRate())
	}
}

func TestEncoder_BaudRestoredAtEnd(t *testing.T) {
	t.Parallel()

	settings := tape.NewMemSettings(1200)
	enc, h := session([]byte{1, 2, 3}, settings)
	_ = enc.Begin()

	for range 10 {
		enc.Tick()
	}
	if settings.BaudRate() != BaudRate {
		t.Errorf("BaudRate() mid-session = %d, want %d", settings.BaudRate(), BaudRate)
	}

	tapetest.Run(enc, h, 1000)
	if settings.BaudRate() != 1200 {
		t.Errorf("BaudRate() after end = %d, want 1200", settings.BaudRate())
	}

	// later terminal ticks must not restore again
	settings.SetBaudRate(2400)
	enc.Tick()
	if settings.BaudRate() != 2400 {
		t.Errorf("terminal Tick() changed BaudRate() to %d", settings.BaudRate())
	}
}

func TestEncoder_BeginTwiceKeepsOriginalBaud(t *testing.T) {
	t.Parallel()

	settings := tape.NewMemSettings(3850)
	enc, h := session([]byte{0x55}, settings)

	_ = enc.Begin()
	_ = enc.Begin()
	if settings.BaudRate() != BaudRate {
		t.Fatalf("BaudRate() = %d, want %d", settings.BaudRate(), BaudRate)
	}

	tapetest.Run(enc, h, 1000)
	if settings.BaudRate() != 3850 {
		t.Errorf("BaudRate() after end = %d, want 3850", settings.BaudRate())
	}
}

func TestEncoder_AbortRestoresBaud(t *testing.T) {
	t.Parallel()

	settings := tape.NewMemSettings(3850)
	enc, h := session([]byte{0xAA, 0xBB}, settings)
	_ = enc.Begin()

	for range 7 {
		enc.Tick()
	}
	enc.Abort()

	if settings.BaudRate() != 3850 {
		t.Errorf("BaudRate() after Abort = %d, want 3850", settings.BaudRate())
	}
	if enc.State() != StateDone {
		t.Errorf("State() after Abort = %s, want done", enc.State())
	}
	if p := enc.Tick(); p != tape.NoPeriod || !h.Finished() {
		t.Errorf("Tick() after Abort = %d (finished %v)", p, h.Finished())
	}

	// a second abort is a no-op
	settings.SetBaudRate(1200)
	enc.Abort()
	if settings.BaudRate() != 1200 {
		t.Errorf("second Abort changed BaudRate() to %d", settings.BaudRate())
	}
}

func TestEncoder_RestartAfterEnd(t *testing.T) {
	t.Parallel()

	settings := tape.NewMemSettings(3850)
	enc, h := session([]byte{0x12}, settings)

	for range 2 {
		*h = tape.Handoff{}
		_ = enc.Begin()
		if h.ID != tape.IDCAQ {
			t.Fatalf("hand-off id = %v, want caq", h.ID)
		}
		periods := tapetest.NonZero(tapetest.Run(enc, h, 1000))
		if got := decode(t, bits(t, periods)); !slices.Equal(got, []byte{0x12}) {
			t.Errorf("decoded % X, want 12", got)
		}
		if settings.BaudRate() != 3850 {
			t.Errorf("BaudRate() = %d, want 3850", settings.BaudRate())
		}
	}
}

func TestEncoder_NilSettings(t *testing.T) {
	t.Parallel()

	enc, h := session([]byte{0x01}, nil)
	_ = enc.Begin()
	tapetest.Run(enc, h, 1000)
	enc.Abort()

	if !h.Finished() {
		t.Error("session did not reach end-of-file")
	}
}

func TestEncoder_ReadFailure(t *testing.T) {
	t.Parallel()

	settings := tape.NewMemSettings(3850)
	h := &tape.Handoff{}
	enc := New(tape.Env{
		Image:    tapetest.NewFailingImage([]byte{1, 2}, false, true),
		Settings: settings,
		Handoff:  h,
	})

	if err := enc.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if p := enc.Tick(); p != tape.NoPeriod || !h.Finished() {
		t.Errorf("Tick() = %d (finished %v), want immediate end-of-file", p, h.Finished())
	}
	if settings.BaudRate() != 3850 {
		t.Errorf("BaudRate() = %d, want 3850", settings.BaudRate())
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    State
		want string
	}{
		{StateStartBit, "start-bit"},
		{StateDataBits, "data-bits"},
		{StateStopBit1, "stop-bit-1"},
		{StateStopBit2, "stop-bit-2"},
		{StateDone, "done"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func BenchmarkEncoder_Tick(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}

	b.ReportAllocs()
	for range b.N {
		h := &tape.Handoff{}
		enc := New(tape.Env{Image: tapetest.NewImage(data), Handoff: h})
		_ = enc.Begin()
		for !h.Finished() {
			enc.Tick()
		}
	}
}
