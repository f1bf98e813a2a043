// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into a freshly allocated planar Buffer.
//
// Decoders deliver interleaved samples in streaming fashion; the transform
// stages work on whole clips, one slice per channel. ReadAll is the bridge:
// it reads until io.EOF, de-interleaves frame by frame, and hands back a
// buffer that owns all of its data.
//
// A source that reports io.EOF before producing any samples yields a valid
// zero-frame buffer. The source is not closed; that stays with the caller.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = channels
	}
	// Read whole frames only
	bufSize -= bufSize % channels

	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, 0, bufSize/channels)
	}

	buf := make([]float32, bufSize)
	carry := 0 // leftover samples from a partial frame

	for {
		n, err := src.ReadSamples(buf[carry:])
		n += carry
		carry = 0

		frames := n / channels
		for f := range frames {
			for ch := range channels {
				data[ch] = append(data[ch], buf[f*channels+ch])
			}
		}

		// A short read can split a frame; keep the tail for the next pass
		if rem := n % channels; rem > 0 {
			copy(buf, buf[n-rem:n])
			carry = rem
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &Buffer{
		SampleRate: src.SampleRate(),
		Data:       data,
	}, nil
}
