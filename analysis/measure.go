// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/quietroom/clipfix/audio"
)

// dbFloor stands in for -Inf when a level is exactly zero.
const dbFloor = -120.0

// ChannelStats holds per-channel levels.
type ChannelStats struct {
	Peak   float64 // largest |sample|, linear
	PeakDb float64 // dBFS
	Rms    float64 // root mean square, linear
	RmsDb  float64 // dBFS
}

// Stats summarizes a clip's levels.
type Stats struct {
	Peak   float64
	PeakDb float64
	Rms    float64
	RmsDb  float64

	// Loudness is the same approximation the loudness normalizer steers
	// by, so a clip normalized to -16 measures about -16 here.
	Loudness float64

	// NoiseFloor is the 10th percentile of |sample| across all channels,
	// linear. The noise gate derives its adaptive threshold from the
	// same statistic.
	NoiseFloor float64

	Duration   time.Duration
	SampleRate int
	Channels   int
	Frames     int

	PerChannel []ChannelStats
}

// Measure computes levels for a clip. A zero-frame buffer yields zeroed
// stats with levels at the dB floor.
func Measure(buf *audio.Buffer) Stats {
	stats := Stats{
		PeakDb:     dbFloor,
		RmsDb:      dbFloor,
		Loudness:   dbFloor,
		Duration:   buf.Duration(),
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels(),
		Frames:     buf.Frames(),
		PerChannel: make([]ChannelStats, buf.Channels()),
	}

	frames := buf.Frames()
	if frames == 0 {
		for ch := range stats.PerChannel {
			stats.PerChannel[ch] = ChannelStats{PeakDb: dbFloor, RmsDb: dbFloor}
		}

		return stats
	}

	var sumSquares float64

	all := make([]float64, 0, frames*buf.Channels())

	for ch := range buf.Data {
		abs := make([]float64, len(buf.Data[ch]))
		squares := make([]float64, len(buf.Data[ch]))

		for i, s := range buf.Data[ch] {
			v := float64(s)
			abs[i] = math.Abs(v)
			squares[i] = v * v
			sumSquares += v * v
		}

		all = append(all, abs...)

		peak := floats.Max(abs)
		rms := math.Sqrt(stat.Mean(squares, nil))
		stats.PerChannel[ch] = ChannelStats{
			Peak:   peak,
			PeakDb: toDb(peak),
			Rms:    rms,
			RmsDb:  toDb(rms),
		}

		if peak > stats.Peak {
			stats.Peak = peak
		}
	}

	stats.PeakDb = toDb(stats.Peak)

	stats.Rms = math.Sqrt(sumSquares / float64(frames*buf.Channels()))
	stats.RmsDb = toDb(stats.Rms)

	// Loudness intentionally divides by the frame count alone. The figure
	// is only comparable to itself, which is all the normalizer needs.
	meanSquare := sumSquares / float64(frames)
	if meanSquare < 0.0001 {
		meanSquare = 0.0001
	}
	stats.Loudness = -0.691 + 10*math.Log10(meanSquare)

	sort.Float64s(all)
	stats.NoiseFloor = stat.Quantile(0.1, stat.Empirical, all, nil)

	return stats
}

// toDb converts a linear level to dBFS, flooring exact silence.
func toDb(v float64) float64 {
	if v <= 0 {
		return dbFloor
	}

	db := 20 * math.Log10(v)
	if db < dbFloor {
		return dbFloor
	}

	return db
}
