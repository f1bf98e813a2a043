// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Buffer holds a whole clip as planar float32 samples: Data[channel][frame],
// nominal range [-1, 1]. Transforms may push samples past that range; the
// PCM encoder clamps on output.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
	}

	return &Buffer{
		SampleRate: sampleRate,
		Data:       data,
	}
}

// Channels reports the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames reports samples per channel. All channels of a valid buffer
// share this length.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}

// Duration reports the clip length at the buffer's sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Clone returns a deep copy sharing no sample data with the receiver.
func (b *Buffer) Clone() *Buffer {
	data := make([][]float32, len(b.Data))
	for ch := range b.Data {
		data[ch] = make([]float32, len(b.Data[ch]))
		copy(data[ch], b.Data[ch])
	}

	return &Buffer{
		SampleRate: b.SampleRate,
		Data:       data,
	}
}

// Validate checks the buffer invariants: a positive sample rate, at least
// one channel, and equal-length channels.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return ErrBadSampleRate
	}

	if len(b.Data) == 0 {
		return ErrNoChannels
	}

	frames := len(b.Data[0])
	for ch := 1; ch < len(b.Data); ch++ {
		if len(b.Data[ch]) != frames {
			return ErrRaggedChannels
		}
	}

	return nil
}
