package window

import "time"

// Timeframe selects the reporting lookback.
type Timeframe string

const (
	Week  Timeframe = "week"
	Month Timeframe = "month"
)

// Parse maps a user-supplied timeframe string to a Timeframe,
// defaulting to Week for anything unrecognized.
func Parse(s string) Timeframe {
	if Timeframe(s) == Month {
		return Month
	}
	return Week
}

// Window pins the reference instant and lookback boundary for one run.
// Every component that needs "now" reads it from here so KPIs and
// signal scores stay mutually consistent.
type Window struct {
	Timeframe Timeframe
	Now       time.Time
	Start     time.Time
}

// Resolve computes the window for tf anchored at now.
func Resolve(now time.Time, tf Timeframe) Window {
	days := 7
	if tf == Month {
		days = 30
	}
	return Window{
		Timeframe: tf,
		Now:       now,
		Start:     now.AddDate(0, 0, -days),
	}
}
