// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"bufio"
	"fmt"
	"io"
)

// Image is the byte source an encoder streams a tape image from.
//
// ReadByte must not block: data is expected to be buffered already, or the
// call reports exhaustion. Seek is only used for random access at session
// start and stage boundaries.
type Image interface {
	io.Reader
	io.ByteReader
	io.Seeker
}

// Stream adapts an io.ReadSeeker into an Image, buffering reads and keeping
// track of the position so a caller can show progress.
type Stream struct {
	rs   io.ReadSeeker
	br   *bufio.Reader
	pos  int64
	size int64
}

// NewStream wraps rs. The size of the underlying data is taken by seeking to
// its end, after which the stream is rewound to the start.
func NewStream(rs io.ReadSeeker) (*Stream, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageAccess, err)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageAccess, err)
	}

	return &Stream{
		rs:   rs,
		br:   bufio.NewReaderSize(rs, 4096),
		size: size,
	}, nil
}

func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.br.Read(p)
	s.pos += int64(n)
	return n, err
}

func (s *Stream) ReadByte() (byte, error) {
	b, err := s.br.ReadByte()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

// Seek repositions the stream and drops any buffered data.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekCurrent {
		offset += s.pos
		whence = io.SeekStart
	}

	pos, err := s.rs.Seek(offset, whence)
	if err != nil {
		return s.pos, fmt.Errorf("%w", err)
	}

	s.br.Reset(s.rs)
	s.pos = pos
	return pos, nil
}

// Pos is the offset of the next byte to be read.
func (s *Stream) Pos() int64 { return s.pos }

// Size is the total length of the image in bytes.
func (s *Stream) Size() int64 { return s.size }
