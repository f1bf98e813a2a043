// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"slices"

	"github.com/quietroom/clipfix/audio"
)

const (
	// Suppression factor applied under the gate.
	noiseSuppression = 0.1

	// Floor estimate when the channel has no samples to measure.
	fallbackNoiseFloor = 0.01
)

// baseGateThreshold maps a level to the minimum gate amplitude.
func baseGateThreshold(level Level) float32 {
	switch level {
	case LevelLight:
		return 0.03
	case LevelStrong:
		return 0.008
	default:
		return 0.015
	}
}

// ReduceNoise applies a soft noise gate to each channel independently.
//
// The gate sits at max(baseThreshold, noiseFloor*2), where the noise floor
// is the 10th-percentile absolute amplitude of the channel. Samples under
// the gate are pulled toward zero proportionally to how far under they sit;
// samples at or above the gate pass through untouched.
//
// The full-channel sort for the floor estimate is O(n log n) per channel,
// fine for clip-length buffers but not for streaming use.
func ReduceNoise(buf *audio.Buffer, level Level) *audio.Buffer {
	base := baseGateThreshold(level)

	out := audio.NewBuffer(buf.SampleRate, buf.Channels(), buf.Frames())
	for ch := range buf.Data {
		src := buf.Data[ch]
		dst := out.Data[ch]

		gate := noiseFloor(src) * 2
		if base > gate {
			gate = base
		}

		for i, s := range src {
			a := s
			if a < 0 {
				a = -a
			}

			if a < gate {
				dst[i] = s * (a / gate) * noiseSuppression
			} else {
				dst[i] = s
			}
		}
	}

	return out
}

// noiseFloor estimates the channel's background amplitude as the value at
// the 10th-percentile index of the sorted absolute samples.
func noiseFloor(samples []float32) float32 {
	if len(samples) == 0 {
		return fallbackNoiseFloor
	}

	abs := make([]float32, len(samples))
	for i, s := range samples {
		if s < 0 {
			s = -s
		}
		abs[i] = s
	}

	slices.Sort(abs)

	// index = floor(len * 0.1)
	return abs[len(abs)/10]
}
