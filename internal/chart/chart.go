// Package chart renders the report's two summary bar charts as inline PNG
// data URIs.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/salesops/pulse/internal/crm"
	"github.com/salesops/pulse/internal/signal"
)

// TagsBar charts how many signals carry each tag, counted across the full
// classified set rather than the truncated ranking. Returns "" for an
// empty signal list.
func TagsBar(signals []signal.Signal) (string, error) {
	counts := map[string]int{}
	for _, s := range signals {
		for _, tag := range s.Tags {
			counts[tag]++
		}
	}
	return renderBar("Signals by Tag", sortedValues(counts))
}

// StageBar charts deal counts per pipeline stage, busiest stage first.
func StageBar(deals []crm.Deal) (string, error) {
	counts := map[string]int{}
	for _, d := range deals {
		counts[d.Stage]++
	}
	return renderBar("Pipeline by Stage (count)", sortedValues(counts))
}

// sortedValues orders bars by count descending, then label, so the image is
// identical across runs with identical input.
func sortedValues(counts map[string]int) []chart.Value {
	values := make([]chart.Value, 0, len(counts))
	for label, count := range counts {
		values = append(values, chart.Value{Label: label, Value: float64(count)})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value > values[j].Value
		}
		return values[i].Label < values[j].Label
	})
	return values
}

func renderBar(title string, values []chart.Value) (string, error) {
	if len(values) == 0 {
		return "", nil
	}

	graph := chart.BarChart{
		Title:    title,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		// An explicit range keeps the Y span non-zero when every bar has
		// the same count; go-chart refuses to infer a range of width zero.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue(values)},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("rendering %q: %w", title, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func maxValue(values []chart.Value) float64 {
	m := 0.0
	for _, v := range values {
		if v.Value > m {
			m = v.Value
		}
	}
	return m
}
