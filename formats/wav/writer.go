// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/tapepbx/audio"
	"github.com/ik5/tapepbx/internal/pcmio"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

// Write encodes src as a PCM WAV file of bitDepth bits (16 or 24) and
// returns the number of samples written. The header sizes are patched when
// the stream ends, so ws must support seeking.
func Write(ws io.WriteSeeker, src audio.Source, bitDepth int) (int, error) {
	if err := pcmio.CheckBitDepth(bitDepth); err != nil {
		return 0, err
	}

	enc := wav.NewEncoder(ws, src.SampleRate(), bitDepth, src.Channels(), wavFormatPCM)
	return pcmio.Encode(enc, src, bitDepth)
}
