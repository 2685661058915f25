// SPDX-License-Identifier: EPL-2.0

package mzf

import "math/bits"

// Checksum counts the bits set to one in a block, modulo 2^16.
type Checksum uint16

// Add accounts for one more byte of the block.
func (c *Checksum) Add(b byte) {
	*c += Checksum(bits.OnesCount8(b))
}

// Bytes returns the checksum in tape order, most significant byte first.
func (c Checksum) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

// Sum computes the checksum of data.
func Sum(data []byte) Checksum {
	var c Checksum
	for _, b := range data {
		c.Add(b)
	}
	return c
}

// HeaderChecksum computes the checksum sent after each header copy.
func HeaderChecksum(h *Header) Checksum {
	return Sum(h[:])
}
