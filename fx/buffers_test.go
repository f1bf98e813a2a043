// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"math"

	"github.com/quietroom/clipfix/audio"
)

// constantBuffer fills every channel with the same value.
func constantBuffer(rate, channels, frames int, value float32) *audio.Buffer {
	buf := audio.NewBuffer(rate, channels, frames)
	for ch := range buf.Data {
		for i := range buf.Data[ch] {
			buf.Data[ch][i] = value
		}
	}

	return buf
}

// sineBuffer fills every channel with a sine wave at the given frequency
// and amplitude.
func sineBuffer(rate, channels, frames int, freq, amplitude float64) *audio.Buffer {
	buf := audio.NewBuffer(rate, channels, frames)
	for ch := range buf.Data {
		for i := range buf.Data[ch] {
			buf.Data[ch][i] = float32(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		}
	}

	return buf
}

// span is a constant-valued run used to assemble synthetic clips.
type span struct {
	value  float32
	frames int
}

// spanBuffer concatenates spans into every channel of a new buffer.
func spanBuffer(rate, channels int, spans ...span) *audio.Buffer {
	total := 0
	for _, s := range spans {
		total += s.frames
	}

	buf := audio.NewBuffer(rate, channels, total)
	for ch := range buf.Data {
		pos := 0
		for _, s := range spans {
			for i := range s.frames {
				buf.Data[ch][pos+i] = s.value
			}
			pos += s.frames
		}
	}

	return buf
}
