package crm

import (
	"sort"
	"time"
)

// DefaultSnapshotRows is how many open deals the report table shows.
const DefaultSnapshotRows = 8

// SnapshotRow is one line of the open-pipeline table in the report payload.
type SnapshotRow struct {
	Deal    string  `json:"deal"`
	Stage   string  `json:"stage"`
	Amount  float64 `json:"amount"`
	AgeDays int     `json:"age_days"`
	Owner   string  `json:"owner"`
}

// Snapshot selects the largest open deals for display: deals with no close
// date, aged against now, sorted by amount descending and truncated to limit.
func Snapshot(deals []Deal, now time.Time, limit int) []SnapshotRow {
	if limit <= 0 {
		limit = DefaultSnapshotRows
	}

	var open []Deal
	for _, d := range deals {
		if d.Open() {
			open = append(open, d)
		}
	}

	sort.Slice(open, func(i, j int) bool {
		if open[i].Amount != open[j].Amount {
			return open[i].Amount > open[j].Amount
		}
		return open[i].Name < open[j].Name
	})

	if len(open) > limit {
		open = open[:limit]
	}

	rows := make([]SnapshotRow, 0, len(open))
	for _, d := range open {
		rows = append(rows, SnapshotRow{
			Deal:    d.Name,
			Stage:   d.Stage,
			Amount:  d.Amount,
			AgeDays: int(now.Sub(d.CreatedAt).Hours() / 24),
			Owner:   d.Owner,
		})
	}
	return rows
}
