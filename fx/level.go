// SPDX-License-Identifier: EPL-2.0

package fx

import "strings"

// Level selects how hard ReduceNoise and Enhance work. The zero value is
// LevelMedium, and any out-of-range value is treated as medium too.
type Level int

const (
	LevelMedium Level = iota
	LevelLight
	LevelStrong
)

func (l Level) String() string {
	switch l {
	case LevelLight:
		return "light"
	case LevelStrong:
		return "strong"
	default:
		return "medium"
	}
}

// ParseLevel maps "light", "medium" or "strong" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "light":
		return LevelLight, nil
	case "medium":
		return LevelMedium, nil
	case "strong":
		return LevelStrong, nil
	default:
		return LevelMedium, ErrUnknownLevel
	}
}
