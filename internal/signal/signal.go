// Package signal turns raw news items into classified, scored signals and
// ranks them for the report.
package signal

import (
	"math"
	"strings"
	"time"

	"github.com/salesops/pulse/internal/news"
)

const (
	weightRecency   = 0.5
	weightTier      = 0.3
	weightRelevance = 0.2

	// staleDays is assumed when an item's date cannot be parsed.
	staleDays = 30
)

// Tiers holds the substring sets used to rank a source host. Containment is
// deliberately loose: "gov" matches any government domain.
type Tiers struct {
	Authoritative []string `yaml:"authoritative"`
	Major         []string `yaml:"major"`
}

// DefaultTiers returns the built-in source tier lists.
func DefaultTiers() Tiers {
	return Tiers{
		Authoritative: []string{"lufthansa", "investor", "gov", "europa.eu"},
		Major:         []string{"reuters", "ft", "bloomberg", "wsj"},
	}
}

// RelevanceFunc supplies the topical-relevance term of the score. The
// default is a constant 1.0, a placeholder the caller can swap for a real
// relevance model without touching the scorer.
type RelevanceFunc func(item news.Item) float64

// ConstantRelevance returns a RelevanceFunc that always yields v.
func ConstantRelevance(v float64) RelevanceFunc {
	return func(news.Item) float64 { return v }
}

// Breakdown shows how each component contributed to the final score.
type Breakdown struct {
	Recency   float64
	Tier      float64
	Relevance float64
	Final     float64
}

// Score computes the weighted score for item at the reference instant now.
func Score(item news.Item, now time.Time, tiers Tiers, rel RelevanceFunc) float64 {
	return ScoreWithBreakdown(item, now, tiers, rel).Final
}

// ScoreWithBreakdown computes the score with component details. The final
// value is always in [0, 1], rounded to two decimals.
func ScoreWithBreakdown(item news.Item, now time.Time, tiers Tiers, rel RelevanceFunc) Breakdown {
	if rel == nil {
		rel = ConstantRelevance(1.0)
	}
	b := Breakdown{
		Recency:   recencyScore(item, now),
		Tier:      tierScore(news.Host(item.URL), tiers),
		Relevance: rel(item),
	}
	raw := b.Recency*weightRecency + b.Tier*weightTier + b.Relevance*weightRelevance
	b.Final = round2(raw)
	return b
}

// recencyScore buckets the item's age in days. Unparseable or missing dates
// fall into the stale 30-day bucket rather than failing the item.
func recencyScore(item news.Item, now time.Time) float64 {
	days := staleDays
	if t, ok := itemTime(item); ok {
		days = int(now.Sub(t).Hours() / 24)
	}
	switch {
	case days <= 2:
		return 1.0
	case days <= 7:
		return 0.7
	case days <= 30:
		return 0.4
	default:
		return 0.2
	}
}

func itemTime(item news.Item) (time.Time, bool) {
	raw := item.Date
	if raw == "" {
		raw = item.LastUpdated
	}
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func tierScore(host string, tiers Tiers) float64 {
	if containsAny(host, tiers.Authoritative) {
		return 1.0
	}
	if containsAny(host, tiers.Major) {
		return 0.8
	}
	return 0.5
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
