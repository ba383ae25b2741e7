// Package kpi aggregates the six pulse KPIs over one reporting window.
package kpi

import (
	"math"
	"strings"

	"github.com/salesops/pulse/internal/crm"
	"github.com/salesops/pulse/internal/window"
)

// KPI is one named metric in the report. Delta stays nil: there is no
// historical baseline to diff against.
type KPI struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Delta *float64 `json:"delta"`
}

// DefaultLateStages is the stage set treated as close to closing for the
// coverage KPI.
func DefaultLateStages() []string {
	return []string{
		crm.StageDeciderBoughtIn,
		crm.StageContractSent,
		crm.StagePresentationScheduled,
		crm.StageClosedWon,
	}
}

// Compute produces the six KPIs. Every rate denominator is floored at 1 and
// every empty-numerator case short-circuits to zero, so malformed or sparse
// data never faults the aggregation.
func Compute(deals []crm.Deal, contacts []crm.Contact, w window.Window, lateStages []string) []KPI {
	if len(lateStages) == 0 {
		lateStages = DefaultLateStages()
	}
	late := make(map[string]bool, len(lateStages))
	for _, s := range lateStages {
		late[s] = true
	}

	var (
		pipelineCreated float64
		createdInWindow int
		forecast        float64
		wonCount        int
		lostCount       int
		cycleDaysTotal  int
	)
	for _, d := range deals {
		if !d.CreatedAt.Before(w.Start) {
			pipelineCreated += d.Amount
			createdInWindow++
		}
		if late[d.Stage] && d.Open() {
			forecast += d.Amount
		}
		if d.Stage == crm.StageClosedWon && d.ClosedAt != nil {
			wonCount++
			cycleDaysTotal += int(d.ClosedAt.Sub(d.CreatedAt).Hours() / 24)
		}
		if d.Stage == crm.StageClosedLost {
			lostCount++
		}
	}

	var newMQLs, funnelContacts int
	for _, c := range contacts {
		// Exact-case match on purpose; the funnel filter below folds case.
		if c.LifecycleStage == "MQL" {
			newMQLs++
		}
		switch strings.ToLower(c.LifecycleStage) {
		case "mql", "sql":
			funnelContacts++
		}
	}

	sqlRate := round2(float64(createdInWindow) / float64(max(1, funnelContacts)))

	var winRate, avgCycle float64
	if wonCount > 0 {
		winRate = round2(float64(wonCount) / float64(max(1, wonCount+lostCount)))
		avgCycle = round1(float64(cycleDaysTotal) / float64(wonCount))
	}

	suffix := "(wk)"
	if w.Timeframe == window.Month {
		suffix = "(mo)"
	}

	return []KPI{
		{ID: "pipeline_created", Label: "Pipeline Created " + suffix, Value: math.Round(pipelineCreated)},
		{ID: "coverage", Label: "Coverage (rough)", Value: round2(forecast / 1e6)},
		{ID: "new_mqls", Label: "New MQLs " + suffix, Value: float64(newMQLs)},
		{ID: "sql_rate", Label: "SQL Rate " + suffix, Value: sqlRate},
		{ID: "win_rate", Label: "Win Rate (L4W)", Value: winRate},
		{ID: "avg_cycle", Label: "Avg Deal Cycle (d)", Value: avgCycle},
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
