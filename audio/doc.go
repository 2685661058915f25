// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM side of tape playback.
//
// This package contains:
//   - Source interface for PCM sample streams
//   - PeriodReader interface for half-period streams
//   - SquareWave, which renders half-periods into PCM samples
//
// # Source Interface
//
// The Source interface is what the file writers consume:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Square Wave
//
// A tape signal is a square wave whose half-periods carry the data. The
// player yields those half-periods through PeriodReader and SquareWave turns
// them into samples:
//
//	wave, err := audio.NewSquareWave(player, 44100, 0.75)
//	buf := make([]float32, wave.BufSize())
//	n, err := wave.ReadSamples(buf)
//
// Sample positions are computed from the exact running time, so a half-period
// that does not fall on a sample boundary is rounded without drifting the
// rest of the signal. Use a sample rate well above the shortest half-period
// (240µs for MZF) to keep the edges sharp; 44.1kHz or more is recommended.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. The wave sits at +amplitude
// during up halves and -amplitude during down halves.
//
// # Error Handling
//
// ReadSamples returns io.EOF once the period stream ends and every pending
// sample was delivered. Other errors from the period stream are passed on
// the same way:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
