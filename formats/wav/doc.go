// SPDX-License-Identifier: EPL-2.0

// Package wav writes rendered tape signal as PCM WAV files.
//
// This package uses github.com/go-audio/wav to encode the container.
//
// # Writing WAV Files
//
//	f, _ := os.Create("game.wav")
//	defer f.Close()
//	n, err := wav.Write(f, wave, 16)
//
// Write drains any audio.Source, typically an audio.SquareWave fed by a
// player, and returns the number of samples written.
//
// # Output Format
//
//   - Sample format: signed PCM, 16 or 24 bit
//   - Channels: taken from the source (1 for a square wave)
//   - Sample rate: taken from the source
//
// The WAV header carries the data size, which is only known at the end of
// the stream. The writer therefore needs an io.WriteSeeker such as *os.File.
package wav
