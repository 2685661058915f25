// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type badSeeker struct {
	io.Reader
}

func (badSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("cannot seek")
}

func TestNewStream_Size(t *testing.T) {
	t.Parallel()

	s, err := NewStream(bytes.NewReader(make([]byte, 300)))
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	if s.Size() != 300 {
		t.Errorf("Size() = %d, want 300", s.Size())
	}
	if s.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", s.Pos())
	}
}

func TestNewStream_SeekFailure(t *testing.T) {
	t.Parallel()

	_, err := NewStream(badSeeker{Reader: bytes.NewReader(nil)})
	if !errors.Is(err, ErrStorageAccess) {
		t.Errorf("NewStream() error = %v, want ErrStorageAccess", err)
	}
}

func TestStream_ReadByte(t *testing.T) {
	t.Parallel()

	s, _ := NewStream(bytes.NewReader([]byte{1, 2, 3}))

	for i, want := range []byte{1, 2, 3} {
		b, err := s.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte() #%d error = %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte() #%d = %d, want %d", i, b, want)
		}
	}

	if _, err := s.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte() at end error = %v, want io.EOF", err)
	}
	if s.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", s.Pos())
	}
}

func TestStream_Read(t *testing.T) {
	t.Parallel()

	data := []byte("0123456789")
	s, _ := NewStream(bytes.NewReader(data))

	buf := make([]byte, 4)
	if _, err := io.ReadFull(s, buf); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
	if string(buf) != "0123" {
		t.Errorf("ReadFull() = %q, want %q", buf, "0123")
	}

	b, _ := s.ReadByte()
	if b != '4' {
		t.Errorf("ReadByte() after Read = %q, want '4'", b)
	}
	if s.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", s.Pos())
	}
}

func TestStream_SeekDropsBuffer(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	s, _ := NewStream(bytes.NewReader(data))

	// fill the buffer, then jump
	if _, err := s.ReadByte(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		offset int64
		whence int
		want   byte
	}{
		{"start", 128, io.SeekStart, 128},
		{"current", 10, io.SeekCurrent, 139},
		{"end", -1, io.SeekEnd, 255},
		{"rewind", 0, io.SeekStart, 0},
	}

	for _, tt := range tests {
		pos, err := s.Seek(tt.offset, tt.whence)
		if err != nil {
			t.Fatalf("%s: Seek() error = %v", tt.name, err)
		}
		if pos != s.Pos() {
			t.Errorf("%s: Seek() = %d, Pos() = %d", tt.name, pos, s.Pos())
		}

		b, err := s.ReadByte()
		if err != nil {
			t.Fatalf("%s: ReadByte() error = %v", tt.name, err)
		}
		if b != tt.want {
			t.Errorf("%s: ReadByte() = %d, want %d", tt.name, b, tt.want)
		}
	}
}

func TestStream_ImplementsImage(t *testing.T) {
	t.Parallel()

	var _ Image = (*Stream)(nil)
}
