package signal

import (
	"sort"
	"time"

	"github.com/salesops/pulse/internal/classify"
	"github.com/salesops/pulse/internal/news"
)

// DefaultRankLimit is how many signals the report keeps after ranking.
const DefaultRankLimit = 12

// Signal is one classified, scored news item. Immutable once built.
type Signal struct {
	Date   string   `json:"date"`
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Tags   []string `json:"tags"`
	Score  float64  `json:"score"`
	Source string   `json:"source"`
}

// Build classifies and scores every item against the single reference
// instant now. The Date field keeps the ISO date portion of whichever
// source date the item carried.
func Build(items []news.Item, now time.Time, rules []classify.Rule, tiers Tiers, rel RelevanceFunc) []Signal {
	signals := make([]Signal, 0, len(items))
	for _, item := range items {
		signals = append(signals, Signal{
			Date:   isoDate(item),
			Title:  item.Title,
			URL:    item.URL,
			Tags:   classify.Classify(item.Title, rules),
			Score:  Score(item, now, tiers, rel),
			Source: news.Host(item.URL),
		})
	}
	return signals
}

// Rank sorts signals by score descending, then date ascending, then title,
// and truncates to limit. The comparator is a total order so identical
// input always produces identical output.
func Rank(signals []Signal, limit int) []Signal {
	if limit <= 0 {
		limit = DefaultRankLimit
	}

	ranked := make([]Signal, len(signals))
	copy(ranked, signals)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Date != ranked[j].Date {
			return ranked[i].Date < ranked[j].Date
		}
		return ranked[i].Title < ranked[j].Title
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// isoDate returns the first ten characters of the item's date string, which
// for any parseable format is the YYYY-MM-DD part.
func isoDate(item news.Item) string {
	raw := item.Date
	if raw == "" {
		raw = item.LastUpdated
	}
	if len(raw) > 10 {
		return raw[:10]
	}
	return raw
}
