// SPDX-License-Identifier: EPL-2.0

package tapetest

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/ik5/tapepbx/tape"
)

// ErrInjected is returned by FailingImage.
var ErrInjected = errors.New("injected storage failure")

// NewImage wraps data in a tape.Stream.
func NewImage(data []byte) *tape.Stream {
	s, err := tape.NewStream(bytes.NewReader(data))
	if err != nil {
		// bytes.Reader never fails to seek
		panic(err)
	}
	return s
}

// MZFImage builds an MZF image: a 128 byte header whose size field is size,
// followed by body. size and len(body) may differ to simulate truncated
// images.
func MZFImage(size uint16, body []byte) []byte {
	out := make([]byte, 128, 128+len(body))
	out[0] = 0x01
	copy(out[1:], "TEST")
	out[5] = 0x0D
	binary.LittleEndian.PutUint16(out[18:], size)
	binary.LittleEndian.PutUint16(out[20:], 0x1200)
	binary.LittleEndian.PutUint16(out[22:], 0x1200)
	return append(out, body...)
}

// FailingImage is an image whose Seek or Read fail on demand.
type FailingImage struct {
	*bytes.Reader
	FailSeek bool
	FailRead bool
}

func NewFailingImage(data []byte, failSeek, failRead bool) *FailingImage {
	return &FailingImage{
		Reader:   bytes.NewReader(data),
		FailSeek: failSeek,
		FailRead: failRead,
	}
}

func (f *FailingImage) Seek(offset int64, whence int) (int64, error) {
	if f.FailSeek {
		return 0, ErrInjected
	}
	return f.Reader.Seek(offset, whence)
}

func (f *FailingImage) Read(p []byte) (int, error) {
	if f.FailRead {
		return 0, ErrInjected
	}
	return f.Reader.Read(p)
}

func (f *FailingImage) ReadByte() (byte, error) {
	if f.FailRead {
		return 0, ErrInjected
	}
	return f.Reader.ReadByte()
}

var _ tape.Image = (*FailingImage)(nil)
