// SPDX-License-Identifier: EPL-2.0

package fx

import "github.com/quietroom/clipfix/audio"

const (
	// Detection threshold bounds: aggression 0 maps to 0.051, aggression 100
	// to 0.001. Higher aggression lowers the threshold, so fewer frames
	// count as silent per-sample; with the fixed minimum duration the net
	// effect is removing only sustained quiet stretches.
	silenceThresholdBase  = 0.001
	silenceThresholdRange = 0.05

	// Runs shorter than this are kept regardless of how quiet they are.
	minSilenceSeconds = 0.15
)

// silentRegion is a half-open frame range [start, end) marked for removal.
type silentRegion struct {
	start int
	end   int
}

// RemoveSilence cuts sustained quiet stretches out of the clip.
//
// A frame is quiet when the loudest sample across its channels stays below
// a threshold derived from aggression (clamped to [0, 100]). A quiet run is
// removed only when it lasts at least 0.15s AND a loud frame follows it;
// a quiet run still open at the end of the clip stays in place.
//
// The result is a new buffer with the recorded runs spliced out of every
// channel. Frame count can only shrink; sample rate and channel count are
// preserved, and the surviving audio is byte-for-byte untouched.
func RemoveSilence(buf *audio.Buffer, aggression int) *audio.Buffer {
	if aggression < 0 {
		aggression = 0
	} else if aggression > 100 {
		aggression = 100
	}

	threshold := float32(silenceThresholdBase + float64(100-aggression)/100.0*silenceThresholdRange)
	minSamples := int(float64(buf.SampleRate) * minSilenceSeconds)

	frames := buf.Frames()
	channels := buf.Channels()

	var regions []silentRegion

	silenceStart := -1
	for f := range frames {
		peak := float32(0)
		for ch := range channels {
			v := buf.Data[ch][f]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}

		if peak < threshold {
			if silenceStart < 0 {
				silenceStart = f
			}
			continue
		}

		if silenceStart >= 0 && f-silenceStart >= minSamples {
			regions = append(regions, silentRegion{start: silenceStart, end: f})
		}
		silenceStart = -1
	}
	// A trailing quiet run never closes, so it is never recorded.

	if len(regions) == 0 {
		return buf.Clone()
	}

	removed := 0
	for _, r := range regions {
		removed += r.end - r.start
	}

	out := audio.NewBuffer(buf.SampleRate, channels, frames-removed)
	for ch := range channels {
		src := buf.Data[ch]
		dst := out.Data[ch][:0]

		prev := 0
		for _, r := range regions {
			dst = append(dst, src[prev:r.start]...)
			prev = r.end
		}
		out.Data[ch] = append(dst, src[prev:]...)
	}

	return out
}
