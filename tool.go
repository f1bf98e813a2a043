// SPDX-License-Identifier: EPL-2.0

package clipfix

import "fmt"

// Tool selects which of the four touch-up transforms a run applies.
type Tool int

const (
	ToolSilence Tool = iota // trim silent regions
	ToolNoise               // suppress low-level noise
	ToolLoudness            // normalize toward a loudness target
	ToolQuality             // presence boost with peak compression
)

// String returns the tool id used in output filenames and on the CLI.
func (t Tool) String() string {
	switch t {
	case ToolSilence:
		return "silence"
	case ToolNoise:
		return "noise"
	case ToolLoudness:
		return "loudness"
	case ToolQuality:
		return "quality"
	}

	return "unknown"
}

// ParseTool converts a tool id to a Tool value.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "silence":
		return ToolSilence, nil
	case "noise":
		return ToolNoise, nil
	case "loudness":
		return ToolLoudness, nil
	case "quality":
		return ToolQuality, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: silence, noise, loudness, quality)", ErrUnknownTool, s)
	}
}
