// SPDX-License-Identifier: EPL-2.0

package mzf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the length of the tape header that precedes the file body.
const HeaderSize = 128

// Header field offsets within the 128 byte tape header.
const (
	offType    = 0
	offName    = 1
	nameLen    = 17
	offSize    = 18
	offLoad    = 20
	offExec    = 22
	offComment = 24
)

// nameEnd terminates the file name on tape.
const nameEnd = 0x0D

// FileType is the attribute byte at the start of the header.
type FileType byte

const (
	TypeObject FileType = 0x01
	TypeBASIC  FileType = 0x02
	TypeBSD    FileType = 0x03
	TypeBRD    FileType = 0x04
	TypeRB     FileType = 0x05
)

func (t FileType) String() string {
	switch t {
	case TypeObject:
		return "OBJ"
	case TypeBASIC:
		return "BTX"
	case TypeBSD:
		return "BSD"
	case TypeBRD:
		return "BRD"
	case TypeRB:
		return "RB"
	}
	return fmt.Sprintf("0x%02X", byte(t))
}

// Header is the raw tape header as stored at the start of an MZF image.
type Header [HeaderSize]byte

// NewHeader builds a header with the given attributes. The name is truncated
// to fit and terminated with a carriage return when shorter than the field.
func NewHeader(t FileType, name string, size, load, exec uint16) Header {
	var h Header
	h[offType] = byte(t)
	n := copy(h[offName:offName+nameLen], name)
	if n < nameLen {
		h[offName+n] = nameEnd
	}
	binary.LittleEndian.PutUint16(h[offSize:], size)
	binary.LittleEndian.PutUint16(h[offLoad:], load)
	binary.LittleEndian.PutUint16(h[offExec:], exec)
	return h
}

// ParseHeader reads a header from r.
func ParseHeader(r io.Reader) (Header, error) {
	var h Header
	if _, err := io.ReadFull(r, h[:]); err != nil {
		return h, fmt.Errorf("%w: %w", ErrShortHeader, err)
	}
	return h, nil
}

func (h *Header) Type() FileType { return FileType(h[offType]) }

// Name returns the file name up to the carriage return terminator.
func (h *Header) Name() string {
	raw := h[offName : offName+nameLen]
	for i, b := range raw {
		if b == nameEnd {
			return string(raw[:i])
		}
	}
	return string(raw)
}

// Size is the length of the file body in bytes.
func (h *Header) Size() uint16 { return binary.LittleEndian.Uint16(h[offSize:]) }

func (h *Header) LoadAddr() uint16 { return binary.LittleEndian.Uint16(h[offLoad:]) }
func (h *Header) ExecAddr() uint16 { return binary.LittleEndian.Uint16(h[offExec:]) }

func (h *Header) Comment() []byte { return h[offComment:] }
