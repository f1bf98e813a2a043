// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"math"

	"github.com/quietroom/clipfix/audio"
)

const (
	// Soft saturation kicks in past this magnitude. Output can still reach
	// softClipThreshold+1; the PCM encoder clamps to [-1, 1] on write.
	softClipThreshold = 0.95

	// Floor for the mean-square argument, keeping log10 defined for
	// silent input.
	meanSquareFloor = 0.0001
)

// NormalizeLoudness applies a single gain so the clip's approximate
// loudness lands on targetLufs, then soft-limits the result.
//
// Loudness here is -0.691 + 10*log10(meanSquare), a deliberately crude
// stand-in for proper LUFS metering with no K-weighting or gating. The
// mean square sums squares across every channel but divides by the
// per-channel frame count, which over-weights multi-channel clips; kept
// as-is for parity with the measurement the targets were tuned against.
func NormalizeLoudness(buf *audio.Buffer, targetLufs float64) *audio.Buffer {
	frames := buf.Frames()
	if frames == 0 {
		return buf.Clone()
	}

	var sumSquares float64
	for ch := range buf.Data {
		for _, s := range buf.Data[ch] {
			sumSquares += float64(s) * float64(s)
		}
	}

	meanSquare := sumSquares / float64(frames)
	if meanSquare < meanSquareFloor {
		meanSquare = meanSquareFloor
	}

	currentLufs := -0.691 + 10*math.Log10(meanSquare)
	gain := math.Pow(10, (targetLufs-currentLufs)/20)

	out := audio.NewBuffer(buf.SampleRate, buf.Channels(), frames)
	for ch := range buf.Data {
		src := buf.Data[ch]
		dst := out.Data[ch]

		for i, s := range src {
			dst[i] = float32(softLimit(float64(s) * gain))
		}
	}

	return out
}

// softLimit saturates smoothly past ±softClipThreshold instead of
// hard-clipping.
func softLimit(v float64) float64 {
	if v > softClipThreshold {
		return softClipThreshold + math.Tanh(v-softClipThreshold)
	}

	if v < -softClipThreshold {
		return -softClipThreshold - math.Tanh(-v-softClipThreshold)
	}

	return v
}
