// SPDX-License-Identifier: EPL-2.0

package mzf

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

// popcount counts bits the slow way.
func popcount(b byte) int {
	n := 0
	for i := range 8 {
		if b&(1<<i) != 0 {
			n++
		}
	}
	return n
}

func TestChecksum_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want Checksum
	}{
		{"empty", nil, 0},
		{"zero byte", []byte{0x00}, 0},
		{"all ones", []byte{0xFF}, 8},
		{"example body", []byte{0x00, 0xFF, 0x81}, 10},
		{"single bits", []byte{0x01, 0x02, 0x04, 0x80}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sum(tt.data); got != tt.want {
				t.Errorf("Sum(% X) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

func TestChecksum_Wraps(t *testing.T) {
	t.Parallel()

	// 9000 * 8 = 72000, which wraps to 6464
	data := bytes.Repeat([]byte{0xFF}, 9000)
	if got := Sum(data); got != 6464 {
		t.Errorf("Sum() = %d, want 6464", got)
	}
}

func TestChecksum_Bytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sum    Checksum
		hi, lo byte
	}{
		{0, 0x00, 0x00},
		{10, 0x00, 0x0A},
		{0x0400, 0x04, 0x00},
		{0x1234, 0x12, 0x34},
	}

	for _, tt := range tests {
		hi, lo := tt.sum.Bytes()
		if hi != tt.hi || lo != tt.lo {
			t.Errorf("Checksum(%#x).Bytes() = (%#x, %#x), want (%#x, %#x)",
				uint16(tt.sum), hi, lo, tt.hi, tt.lo)
		}
	}
}

func TestHeaderChecksum_RandomHeaders(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		var h Header
		for i := range h {
			h[i] = byte(rng.UintN(256))
		}

		want := 0
		for _, b := range h {
			want += popcount(b)
		}
		want %= 65536

		got := HeaderChecksum(&h)
		if int(got) != want {
			t.Fatalf("HeaderChecksum() = %d, want %d", got, want)
		}

		hi, lo := got.Bytes()
		if int(hi) != want>>8 || int(lo) != want&0xFF {
			t.Fatalf("Bytes() = (%d, %d), want (%d, %d)", hi, lo, want>>8, want&0xFF)
		}
	}
}

func TestHeaderChecksum_Full(t *testing.T) {
	t.Parallel()

	var h Header
	for i := range h {
		h[i] = 0xFF
	}
	// 128 * 8
	if got := HeaderChecksum(&h); got != 1024 {
		t.Errorf("HeaderChecksum() = %d, want 1024", got)
	}
}

// TestChecksum_ZeroAllocs verifies no heap allocations
func TestChecksum_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	var h Header
	allocs := testing.AllocsPerRun(100, func() {
		_ = HeaderChecksum(&h)
	})
	if allocs > 0 {
		t.Errorf("HeaderChecksum allocated %v times, want 0", allocs)
	}
}

func BenchmarkHeaderChecksum(b *testing.B) {
	var h Header
	for i := range h {
		h[i] = byte(i * 7)
	}

	b.ReportAllocs()
	for range b.N {
		_ = HeaderChecksum(&h)
	}
}
