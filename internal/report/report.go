// Package report assembles one pulse report payload from the CRM snapshot
// and the news feed.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/salesops/pulse/internal/chart"
	"github.com/salesops/pulse/internal/classify"
	"github.com/salesops/pulse/internal/crm"
	"github.com/salesops/pulse/internal/kpi"
	"github.com/salesops/pulse/internal/news"
	"github.com/salesops/pulse/internal/signal"
	"github.com/salesops/pulse/internal/window"
)

// ChartImages carries the two bar charts as base64 PNG data URIs. Either
// may be empty when there was nothing to chart.
type ChartImages struct {
	TagsBar       string `json:"tags_bar,omitempty"`
	PipelineStage string `json:"pipeline_stage,omitempty"`
}

// Report is the full JSON payload for one run.
type Report struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Timeframe   string            `json:"timeframe"`
	KPIs        []kpi.KPI         `json:"kpis"`
	Signals     []signal.Signal   `json:"signals"`
	CRM         []crm.SnapshotRow `json:"crm"`
	ChartImages ChartImages       `json:"chart_images"`
}

// Options configures one assembly run. Zero values fall back to the
// built-in defaults, so Options{} produces a standard weekly report.
type Options struct {
	Timeframe  window.Timeframe
	Now        time.Time // captured once; zero means time.Now in UTC
	Rules      []classify.Rule
	Tiers      signal.Tiers
	Relevance  signal.RelevanceFunc
	LateStages []string
	MaxSignals int
	MaxCRMRows int
}

// Assemble runs the whole pipeline: window resolution, KPI aggregation,
// signal classification/scoring/ranking, CRM snapshot and charts. It never
// fails on malformed-but-present data; chart rendering problems degrade to
// missing images.
func Assemble(data *crm.Dataset, items []news.Item, opts Options) *Report {
	if data == nil {
		data = &crm.Dataset{}
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}
	if opts.Timeframe == "" {
		opts.Timeframe = window.Week
	}
	if opts.Rules == nil {
		opts.Rules = classify.DefaultRules()
	}
	if len(opts.Tiers.Authoritative) == 0 && len(opts.Tiers.Major) == 0 {
		opts.Tiers = signal.DefaultTiers()
	}
	if opts.Relevance == nil {
		opts.Relevance = signal.ConstantRelevance(1.0)
	}
	if opts.MaxSignals <= 0 {
		opts.MaxSignals = signal.DefaultRankLimit
	}
	if opts.MaxCRMRows <= 0 {
		opts.MaxCRMRows = crm.DefaultSnapshotRows
	}

	w := window.Resolve(opts.Now, opts.Timeframe)

	signals := signal.Build(items, w.Now, opts.Rules, opts.Tiers, opts.Relevance)

	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: w.Now,
		Timeframe:   string(w.Timeframe),
		KPIs:        kpi.Compute(data.Deals, data.Contacts, w, opts.LateStages),
		Signals:     signal.Rank(signals, opts.MaxSignals),
		CRM:         crm.Snapshot(data.Deals, w.Now, opts.MaxCRMRows),
	}
	if r.Signals == nil {
		r.Signals = []signal.Signal{}
	}
	if r.CRM == nil {
		r.CRM = []crm.SnapshotRow{}
	}

	// Tag counts run over the full classified set, not just the top ranks.
	var err error
	if r.ChartImages.TagsBar, err = chart.TagsBar(signals); err != nil {
		log.Warn().Err(err).Msg("skipping tags chart")
	}
	if r.ChartImages.PipelineStage, err = chart.StageBar(data.Deals); err != nil {
		log.Warn().Err(err).Msg("skipping pipeline chart")
	}

	log.Debug().
		Str("timeframe", r.Timeframe).
		Int("signals", len(r.Signals)).
		Int("crm_rows", len(r.CRM)).
		Msg("assembled report")

	return r
}

// Write encodes the report as indented JSON.
func Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// Read decodes a report previously produced by Write.
func Read(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &rep, nil
}
