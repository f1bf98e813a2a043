// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix folds a multi-channel buffer to mono by averaging channels
// frame by frame. Mono input comes back as an independent copy.
func Downmix(buf *Buffer) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	channels := buf.Channels()
	if channels == 1 {
		return buf.Clone(), nil
	}

	frames := buf.Frames()
	out := NewBuffer(buf.SampleRate, 1, frames)
	dst := out.Data[0]

	// Unrolled loops for common layouts
	switch channels {
	case 2: // Stereo (most common)
		left, right := buf.Data[0], buf.Data[1]
		for f := range frames {
			dst[f] = (left[f] + right[f]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			sum := buf.Data[0][f] + buf.Data[1][f] + buf.Data[2][f] + buf.Data[3][f]
			dst[f] = sum * 0.25
		}
	default: // Generic path
		invChannels := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			for ch := range channels {
				sum += buf.Data[ch][f]
			}
			dst[f] = sum * invChannels
		}
	}

	return out, nil
}
