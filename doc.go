// SPDX-License-Identifier: EPL-2.0

// Package tapepbx turns retro computer cassette images into tape signal.
//
// Tape images hold the bytes a computer would have saved to cassette. To load
// them on real hardware they have to be played back as the square wave the
// machine's tape routine expects. This module produces that wave one
// half-period at a time, either to drive a cassette emulation output directly
// or to render it into an audio file.
//
// # Supported Formats
//
//   - MZF / M12 / MZT (Sharp MZ-700, MZ-80K, MZ-80A) via formats/mzf
//   - CAQ (Mattel Aquarius) via formats/caq
//
// # Quick Start
//
// The simplest way to get a playable file is RenderFile:
//
//	settings := tape.NewMemSettings(3850)
//	res, err := tapepbx.RenderFile(ctx, "game.mzf", "game.wav",
//	    settings, tapepbx.DefaultOptions(), logger)
//
// # Playback Pipeline
//
// For more control, drive the pieces directly:
//
//	stream, _ := tape.NewStream(file)
//	p := player.New(nil, settings, logger)
//	_ = p.Load("game.caq", stream)
//
//	// real time: one half-period per output toggle
//	per, err := p.Next()
//
//	// or offline: render into samples
//	wave, _ := audio.NewSquareWave(p, 44100, 0.75)
//	n, err := wav.Write(out, wave, 16)
//
// # Output Files
//
// Rendered signal can be written as WAV (formats/wav) or AIFF
// (formats/aiff), 16 or 24 bit. Choose a sample rate of at least 44.1kHz so
// the shortest half-periods keep their shape.
//
// See the individual subpackages for more detailed documentation.
package tapepbx
