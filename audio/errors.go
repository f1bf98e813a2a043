// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrBadSampleRate indicates a zero or negative sample rate.
	ErrBadSampleRate = errors.New("sample rate must be positive")

	// ErrNoChannels indicates a buffer without any channel data.
	ErrNoChannels = errors.New("buffer must have at least one channel")

	// ErrRaggedChannels indicates channels of unequal length.
	ErrRaggedChannels = errors.New("all channels must have the same length")
)
