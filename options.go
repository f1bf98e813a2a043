// SPDX-License-Identifier: EPL-2.0

package clipfix

import "github.com/quietroom/clipfix/fx"

// Options configures a single processing run. Only the parameters of the
// selected Tool are consulted; the rest are ignored.
type Options struct {
	// Tool selects the transform to apply.
	Tool Tool

	// Aggression steers the silence threshold, 0-100 (ToolSilence).
	// Values outside the range are clamped.
	Aggression int

	// NoiseLevel sets the gate strength (ToolNoise).
	NoiseLevel fx.Level

	// TargetLufs is the loudness target in LUFS (ToolLoudness).
	// Negative, typically -24 to -10.
	TargetLufs float64

	// EnhanceLevel sets the presence boost strength (ToolQuality).
	EnhanceLevel fx.Level

	// OutputRate resamples the result before encoding when non-zero.
	OutputRate int

	// Downmix collapses the result to mono before encoding.
	Downmix bool
}

// DefaultOptions returns the defaults for the given tool: aggression 80,
// medium noise gate, -16 LUFS target, medium enhancement, output conversion
// off.
func DefaultOptions(tool Tool) Options {
	return Options{
		Tool:         tool,
		Aggression:   80,
		NoiseLevel:   fx.LevelMedium,
		TargetLufs:   -16,
		EnhanceLevel: fx.LevelMedium,
	}
}
