package cmd

import (
	"testing"

	"github.com/salesops/pulse/internal/config"
	"github.com/salesops/pulse/internal/window"
)

func TestResolveTimeframe(t *testing.T) {
	tests := []struct {
		flag string
		cfg  string
		want window.Timeframe
	}{
		{"", "", window.Week},
		{"", "month", window.Month},
		{"week", "month", window.Week},
		{"month", "", window.Month},
		{"bogus", "month", window.Week},
	}
	for _, tt := range tests {
		cfg := &config.Config{Timeframe: tt.cfg}
		if got := resolveTimeframe(tt.flag, cfg); got != tt.want {
			t.Errorf("resolveTimeframe(%q, cfg %q) = %q, want %q", tt.flag, tt.cfg, got, tt.want)
		}
	}
}
