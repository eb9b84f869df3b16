// ABOUTME: Date-ordered sorting for aggregation results
// ABOUTME: Defines a total order: parsed dates descending, unparseable dates last

package aggregate

import (
	"sort"
	"time"

	"github.com/newswave/newswave/internal/models"
)

// dateLayouts covers the formats seen across the configured feeds. RFC1123
// variants dominate RSS; RFC3339 covers Atom and submissions.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a source-native pubDate string. ok is false when no known
// layout matches.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortByDate orders articles newest first. Articles with unparseable dates
// sort after every dated article, keeping their relative order. This replaces
// the undefined behavior a naive NaN date comparison would have.
func sortByDate(articles []models.Article) {
	type entry struct {
		article models.Article
		t       time.Time
		dated   bool
	}
	entries := make([]entry, len(articles))
	for i, a := range articles {
		t, ok := ParseDate(a.PubDate)
		entries[i] = entry{article: a, t: t, dated: ok}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		switch {
		case entries[i].dated && entries[j].dated:
			return entries[i].t.After(entries[j].t)
		case entries[i].dated:
			return true
		default:
			return false
		}
	})

	for i, e := range entries {
		articles[i] = e.article
	}
}
