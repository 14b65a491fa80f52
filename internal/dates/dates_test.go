package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
		{"2026-03-01 09:30", time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)},
		{"2026-03-01T09:30", time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)},
		{"  2026-03-01  ", time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "03/01/2026", "2026-13-01"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}
