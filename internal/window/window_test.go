package window

import (
	"testing"
	"time"
)

func TestResolveWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := Resolve(now, Week)

	if !w.Now.Equal(now) {
		t.Errorf("window should keep the reference instant, got %v", w.Now)
	}
	want := now.AddDate(0, 0, -7)
	if !w.Start.Equal(want) {
		t.Errorf("week start = %v, want %v", w.Start, want)
	}
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := Resolve(now, Month)

	want := now.AddDate(0, 0, -30)
	if !w.Start.Equal(want) {
		t.Errorf("month start = %v, want %v", w.Start, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Timeframe
	}{
		{"week", Week},
		{"month", Month},
		{"", Week},
		{"quarter", Week},
		{"Month", Week},
	}
	for _, tt := range tests {
		if got := Parse(tt.input); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
