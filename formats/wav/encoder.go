// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/quietroom/clipfix/audio"
	"github.com/quietroom/clipfix/utils"
)

// Encode writes buf to w as a 16-bit PCM WAV file.
//
// Samples are clamped to [-1, 1] and quantized with utils.Float32ToInt16,
// then interleaved frame-major. An empty buffer produces a header-only
// 44-byte file.
func Encode(w io.Writer, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := WriteWAV16(w, buf.SampleRate, buf.Channels(), interleave(buf)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// EncodeBytes renders buf to an in-memory WAV container.
func EncodeBytes(buf *audio.Buffer) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(44 + buf.Frames()*buf.Channels()*2)

	if err := Encode(&out, buf); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// interleave flattens planar channels into frame-major int16 PCM.
func interleave(buf *audio.Buffer) []int16 {
	channels := buf.Channels()

	samples := make([]int16, buf.Frames()*channels)
	for ch := range buf.Data {
		for f, v := range buf.Data[ch] {
			samples[f*channels+ch] = utils.Float32ToInt16(v)
		}
	}

	return samples
}
