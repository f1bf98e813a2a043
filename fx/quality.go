// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"math"

	"github.com/quietroom/clipfix/audio"
)

const (
	compressThreshold = 0.7
	compressRatio     = 0.5
)

// enhanceBoost maps a Level to the broadband gain of the enhancement
// pass.
func enhanceBoost(level Level) float64 {
	switch level {
	case LevelLight:
		return 1.05
	case LevelStrong:
		return 1.15
	default:
		return 1.1
	}
}

// Enhance brightens a clip with a slow position-dependent "presence"
// modulation blended into a broadband boost, then tames the result with
// a 2:1 compressor above 0.7.
//
// The presence term is sin(i*0.0001)*0.05+1 over the per-channel sample
// index, so the effect drifts over roughly a minute of audio rather than
// tracking any spectral content. Running Enhance twice compounds both
// passes; it is not idempotent.
func Enhance(buf *audio.Buffer, level Level) *audio.Buffer {
	frames := buf.Frames()
	boost := enhanceBoost(level)

	out := audio.NewBuffer(buf.SampleRate, buf.Channels(), frames)
	for ch := range buf.Data {
		src := buf.Data[ch]
		dst := out.Data[ch]

		for i, s := range src {
			presence := math.Sin(float64(i)*0.0001)*0.05 + 1
			dst[i] = float32(float64(s) * (boost*0.8 + presence*0.2))
		}

		for i, v := range dst {
			if v > compressThreshold {
				dst[i] = compressThreshold + (v-compressThreshold)*compressRatio
			} else if v < -compressThreshold {
				dst[i] = -(compressThreshold + (-v-compressThreshold)*compressRatio)
			}
		}
	}

	return out
}
