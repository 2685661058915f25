// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/tapepbx/audio"
	"github.com/ik5/tapepbx/internal/pcmio"
)

// Write encodes src as a PCM AIFF file of bitDepth bits (16 or 24) and
// returns the number of samples written. ws must support seeking so the
// chunk sizes can be patched when the stream ends.
func Write(ws io.WriteSeeker, src audio.Source, bitDepth int) (int, error) {
	if err := pcmio.CheckBitDepth(bitDepth); err != nil {
		return 0, err
	}

	enc := aiff.NewEncoder(ws, src.SampleRate(), bitDepth, src.Channels())
	return pcmio.Encode(enc, src, bitDepth)
}
