// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"light", "light", LevelLight, false},
		{"medium", "medium", LevelMedium, false},
		{"strong", "strong", LevelStrong, false},
		{"mixed case", "Light", LevelLight, false},
		{"upper case", "STRONG", LevelStrong, false},
		{"empty", "", LevelMedium, true},
		{"unknown", "loud", LevelMedium, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLevel) {
					t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", tt.input, err)
				}
			} else if err != nil {
				t.Errorf("ParseLevel(%q) error = %v, want nil", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{LevelLight, "light"},
		{LevelMedium, "medium"},
		{LevelStrong, "strong"},
		{Level(42), "medium"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestLevel_ZeroValue(t *testing.T) {
	t.Parallel()

	var l Level
	if l != LevelMedium {
		t.Errorf("zero value = %v, want LevelMedium", l)
	}
}
