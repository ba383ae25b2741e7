// Package news reads the externally supplied news feed. Retrieval is out of
// scope; the feed arrives as a file, either a JSON array of items or an
// RSS/Atom document.
package news

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/phuslu/log"
)

// Item is one raw news entry before classification and scoring.
type Item struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Date        string `json:"date,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// Load reads news items from path. An empty path means no feed was supplied
// and yields an empty list, not an error. JSON files are decoded directly;
// anything else is parsed as RSS/Atom.
func Load(path string) ([]Item, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("news feed file not found; continuing with empty feed")
			return nil, nil
		}
		return nil, fmt.Errorf("opening news feed: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var items []Item
		if err := json.NewDecoder(f).Decode(&items); err != nil {
			return nil, fmt.Errorf("parsing news feed %s: %w", path, err)
		}
		return items, nil
	}

	feed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing news feed %s: %w", path, err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := Item{Title: it.Title, URL: it.Link}
		if it.PublishedParsed != nil {
			item.Date = it.PublishedParsed.UTC().Format(time.RFC3339)
		}
		if it.UpdatedParsed != nil {
			item.LastUpdated = it.UpdatedParsed.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}
	return items, nil
}

// Host extracts the lowercase hostname from rawurl, or "" if it has none.
func Host(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
