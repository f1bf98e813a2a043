// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/quietroom/clipfix/utils"

// Resample converts buf to dstRate using cubic interpolation.
// Preserves channel count; works for both upsampling and downsampling.
// Includes basic anti-aliasing filtering when downsampling.
func Resample(buf *Buffer, dstRate int) (*Buffer, error) {
	if dstRate <= 0 {
		return nil, ErrBadSampleRate
	}

	if err := buf.Validate(); err != nil {
		return nil, err
	}

	if dstRate == buf.SampleRate {
		return buf.Clone(), nil
	}

	srcFrames := buf.Frames()
	channels := buf.Channels()
	ratio := float64(buf.SampleRate) / float64(dstRate)
	outFrames := int(float64(srcFrames) / ratio)

	out := NewBuffer(dstRate, channels, outFrames)
	if srcFrames == 0 || outFrames == 0 {
		return out, nil
	}

	for ch := range channels {
		src := buf.Data[ch]
		if ratio > 1.0 {
			// Simple one-pole low-pass before decimation
			// This is a simplified filter - for production, use a proper FIR filter
			src = lowPass(src)
		}

		dst := out.Data[ch]
		pos := 0.0

		for i := range dst {
			idx := int(pos)
			alpha := float32(pos - float64(idx))

			// Duplicate edge frames where the 4-point window runs past the clip
			y0 := src[clampIndex(idx-1, srcFrames)]
			y1 := src[clampIndex(idx, srcFrames)]
			y2 := src[clampIndex(idx+1, srcFrames)]
			y3 := src[clampIndex(idx+2, srcFrames)]

			dst[i] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
			pos += ratio
		}
	}

	return out, nil
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1] over a copy of src.
// State starts at the first sample to avoid warm-up transients.
func lowPass(src []float32) []float32 {
	const alpha = 0.5

	out := make([]float32, len(src))
	state := src[0]

	for i, x := range src {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}
