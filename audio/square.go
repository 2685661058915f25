// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// SquareWave renders half-periods into a mono square wave.
//
// The level flips at the start of every half-period, beginning high. Sample
// counts are derived from the running total of all half-periods so rounding
// never accumulates: after any number of periods the output is within one
// sample of the exact length.
type SquareWave struct {
	src  PeriodReader
	rate int
	amp  float32

	level     float32
	remaining int
	elapsed   time.Duration
	emitted   int64
	err       error
}

// NewSquareWave creates a square wave at sampleRate Hz swinging between
// +amplitude and -amplitude.
func NewSquareWave(src PeriodReader, sampleRate int, amplitude float32) (*SquareWave, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if amplitude <= 0 || amplitude > 1 {
		return nil, ErrInvalidAmplitude
	}

	return &SquareWave{
		src:   src,
		rate:  sampleRate,
		amp:   amplitude,
		level: -amplitude,
	}, nil
}

func (s *SquareWave) SampleRate() int { return s.rate }
func (s *SquareWave) Channels() int   { return 1 }
func (s *SquareWave) BufSize() int    { return 4096 }
func (s *SquareWave) Close() error    { return nil }

// Elapsed is the total duration of the half-periods read so far.
func (s *SquareWave) Elapsed() time.Duration { return s.elapsed }

// Samples is the number of samples the half-periods read so far span.
func (s *SquareWave) Samples() int64 { return s.emitted }

func (s *SquareWave) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) {
		if s.remaining == 0 {
			if s.err != nil {
				break
			}

			d, err := s.src.NextPeriod()
			if err != nil {
				s.err = err
				break
			}

			s.level = -s.level
			s.elapsed += d
			target := int64(s.elapsed) * int64(s.rate) / int64(time.Second)
			s.remaining = int(target - s.emitted)
			s.emitted = target
			continue
		}

		k := min(s.remaining, len(dst)-n)
		for i := range k {
			dst[n+i] = s.level
		}
		n += k
		s.remaining -= k
	}

	if n == 0 && s.err != nil {
		return 0, s.err
	}
	return n, nil
}

var _ Source = (*SquareWave)(nil)
