// SPDX-License-Identifier: EPL-2.0

// Package caq encodes Mattel Aquarius CAQ tape images as cassette signal.
//
// The Aquarius reads its cassette port as a 600 baud serial line. Each byte
// of the image is framed as:
//
//	start bit   0
//	data bits   bit 7 down to bit 0
//	stop bits   1, 1
//
// Every bit is two full square wave cycles, four half-periods. A one (mark)
// uses 272µs half-periods, a zero (space) 544µs, so a byte always takes 44
// half-periods no matter its value.
//
// # Baud Rate
//
// Playback runs at 600 baud whatever the shared setting says. Begin saves the
// configured rate and forces 600; the saved rate is restored when the image
// is exhausted or the session is aborted. Calling Begin again while the
// override is active keeps the originally saved rate.
package caq
