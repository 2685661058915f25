// SPDX-License-Identifier: EPL-2.0

// Package pcmio drains an audio.Source into a go-audio container encoder.
package pcmio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/tapepbx/audio"
	"github.com/ik5/tapepbx/utils"
)

// ErrUnsupportedBitDepth is returned for bit depths other than 16 and 24.
var ErrUnsupportedBitDepth = errors.New("only 16 and 24 bit PCM supported")

// Encoder is the part of the go-audio wav and aiff encoders used here.
type Encoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// CheckBitDepth validates bitDepth for Encode.
func CheckBitDepth(bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	return nil
}

// Encode reads src until io.EOF, writes every sample to enc and closes it.
// It returns the number of samples written.
func Encode(enc Encoder, src audio.Source, bitDepth int) (int, error) {
	if err := CheckBitDepth(bitDepth); err != nil {
		return 0, err
	}

	buf := make([]float32, src.BufSize())
	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: src.Channels(),
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, 0, len(buf)),
		SourceBitDepth: bitDepth,
	}

	total := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			ib.Data = utils.AppendPCM(ib.Data[:0], buf[:n], bitDepth)
			if werr := enc.Write(ib); werr != nil {
				return total, fmt.Errorf("%w", werr)
			}
			total += n
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("%w", err)
	}
	return total, nil
}
