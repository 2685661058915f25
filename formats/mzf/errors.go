// SPDX-License-Identifier: EPL-2.0

package mzf

import "errors"

var (
	// ErrShortHeader indicates the image is shorter than a tape header
	ErrShortHeader = errors.New("mzf header truncated")
)
