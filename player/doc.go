// SPDX-License-Identifier: EPL-2.0

// Package player schedules tape encoder sessions.
//
// A Player picks the encoder for an image by its file extension, owns the
// hand-off state the encoder reports through, and turns the raw tick
// contract into a stream of half-periods:
//
//	p := player.New(nil, tape.NewMemSettings(3850), logger)
//	if err := p.Load("game.mzf", stream); err != nil {
//	    return err
//	}
//	for {
//	    per, err := p.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // toggle output, wait per.Duration()
//	}
//
// Empty ticks, which encoders use to move between stages, are absorbed by
// Next. A session that keeps producing empty ticks fails with
// tape.ErrStalled instead of spinning.
//
// Stop abandons a session early. Encoders release what they overrode on
// Begin, so the shared baud rate is restored even when a CAQ session is cut
// short.
package player
