// SPDX-License-Identifier: EPL-2.0

// Package tape provides the primitives shared by the cassette encoders.
//
// An encoder converts a tape image into square-wave half-periods. A scheduler
// calls Tick once for every half-period the playback hardware emits and uses
// the returned Period as the time until the next output toggle:
//
//	h := &tape.Handoff{}
//	enc := mzf.New(tape.Env{Image: img, Handoff: h})
//	if err := enc.Begin(); err != nil {
//	    // h already requests end-of-file handling
//	}
//	for !h.Finished() {
//	    p := enc.Tick()
//	    if p == tape.NoPeriod {
//	        continue // state advanced without output
//	    }
//	    // toggle the output, wait p.Duration()
//	}
//
// # Pulses
//
// Pulse describes a logical bit period with (possibly asymmetric) up and down
// halves. HalfWave emits a pulse in two calls and reports when the pulse is
// complete, so the framing logic only advances on full pulses.
//
// # Images
//
// Image is the byte source interface. Stream adapts any io.ReadSeeker, such
// as an *os.File or a *bytes.Reader, and tracks position for progress.
//
// # Hand-off
//
// Handoff carries the block identity and next scheduler task. Encoders set it
// on Begin and request end-of-file when they reach their terminal state.
// Settings carries the shared baud rate.
//
// # Registry
//
// Registry maps file extensions to encoder factories:
//
//	reg := tape.NewRegistry()
//	reg.Register("mzf", mzf.Factory)
//	reg.Register("caq", caq.Factory)
//	factory, ok := reg.Get("mzf")
package tape
