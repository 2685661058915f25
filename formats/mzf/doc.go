// SPDX-License-Identifier: EPL-2.0

// Package mzf encodes Sharp MZ (MZF/M12) tape images as pulse width
// modulated tape signal.
//
// # Signal Layout
//
// Every bit is a pulse made of a high half followed by a low half. A long
// pulse (464/494µs) is a one, a short pulse (240/264µs) is a zero. A byte is
// sent as one long leader pulse followed by its eight bits, most significant
// first.
//
// A tape is played in this order:
//
//	long gap          22000 short pulses
//	leader tapemark   40 long, 40 short, 1 long
//	header            128 bytes
//	header checksum   2 bytes
//	header copy       128 bytes
//	header checksum   2 bytes
//	short gap         11000 short pulses
//	trailer tapemark  20 long, 20 short, 1 long
//	file              header size field bytes
//	file checksum     2 bytes
//
// The conventional format repeats the file and its checksum. Playback stops
// after the first copy: most loaders succeed on it, and the repeat makes a
// length based progress display look like playback restarted.
//
// # Checksums
//
// A checksum is the number of bits set to one in its block, modulo 2^16,
// sent most significant byte first. The header checksum is computed when the
// session begins. The file checksum accumulates while the file is sent.
//
// # Usage
//
//	h := &tape.Handoff{}
//	enc := mzf.New(tape.Env{Image: stream, Handoff: h})
//	if err := enc.Begin(); err != nil {
//	    return err
//	}
//	for !h.Finished() {
//	    p := enc.Tick()
//	    // ...
//	}
package mzf
