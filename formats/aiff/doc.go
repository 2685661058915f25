// SPDX-License-Identifier: EPL-2.0

// Package aiff writes rendered tape signal as AIFF files.
//
// This package uses github.com/go-audio/aiff to encode the container. AIFF
// is handy for players and tools on macOS, and for tape emulators that only
// take big-endian PCM.
//
// # Writing AIFF Files
//
//	f, _ := os.Create("game.aiff")
//	defer f.Close()
//	n, err := aiff.Write(f, wave, 16)
//
// # Output Format
//
//   - Sample format: signed PCM, 16 or 24 bit, big-endian
//   - Channels and sample rate: taken from the source
//
// Chunk sizes are patched on close, so the destination must be an
// io.WriteSeeker.
package aiff
