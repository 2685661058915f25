// SPDX-License-Identifier: EPL-2.0

package tape

import "errors"

var (
	// ErrStorageAccess is returned when the tape image cannot be positioned
	// or a fixed-size block cannot be read from it.
	ErrStorageAccess = errors.New("tape image access failed")

	// ErrUnknownFormat is returned when no encoder is registered for a format.
	ErrUnknownFormat = errors.New("unknown tape format")

	// ErrStalled is returned when an encoder keeps producing empty ticks
	// without reaching its terminal state.
	ErrStalled = errors.New("encoder stalled")
)
