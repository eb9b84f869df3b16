// ABOUTME: Tests for gofeed item normalization
// ABOUTME: Validates field fallback chains, snippet stripping and image resolution

package normalize

import (
	"testing"

	"github.com/mmcdole/gofeed"
)

func TestItemFieldFallbacks(t *testing.T) {
	t.Run("link falls back to guid", func(t *testing.T) {
		item := gofeed.Item{Title: "a", GUID: "https://example.com/guid/1"}
		got := Item(&item, "Feed")
		if got.Link != "https://example.com/guid/1" {
			t.Errorf("Link = %q, want GUID fallback", got.Link)
		}
	})

	t.Run("link prefers item link", func(t *testing.T) {
		item := gofeed.Item{Title: "a", Link: "https://example.com/post", GUID: "guid-1"}
		got := Item(&item, "Feed")
		if got.Link != "https://example.com/post" {
			t.Errorf("Link = %q, want item link", got.Link)
		}
	})

	t.Run("pubDate falls back to updated", func(t *testing.T) {
		item := gofeed.Item{Title: "a", Updated: "2024-03-01T10:00:00Z"}
		got := Item(&item, "Feed")
		if got.PubDate != "2024-03-01T10:00:00Z" {
			t.Errorf("PubDate = %q, want updated fallback", got.PubDate)
		}
	})

	t.Run("missing feed title becomes unknown source", func(t *testing.T) {
		item := gofeed.Item{Title: "a"}
		got := Item(&item, "")
		if got.Source != UnknownSource {
			t.Errorf("Source = %q, want %q", got.Source, UnknownSource)
		}
	})

	t.Run("summary prefers content over description", func(t *testing.T) {
		item := gofeed.Item{
			Title:       "a",
			Content:     "<p>Rich <b>content</b> here</p>",
			Description: "short description",
		}
		got := Item(&item, "Feed")
		if got.Summary != "Rich content here" {
			t.Errorf("Summary = %q, want stripped content", got.Summary)
		}
	})

	t.Run("summary falls back to description", func(t *testing.T) {
		item := gofeed.Item{Title: "a", Description: "<i>desc</i> only"}
		got := Item(&item, "Feed")
		if got.Summary != "desc only" {
			t.Errorf("Summary = %q, want stripped description", got.Summary)
		}
	})
}

func TestItemImageResolution(t *testing.T) {
	t.Run("enclosure wins", func(t *testing.T) {
		item := gofeed.Item{
			Title:       "a",
			Content:     `<img src="https://cdn.example.com/inline.jpg">`,
			Enclosures:  []*gofeed.Enclosure{{URL: "http://cdn.example.com/enc.jpg", Type: "image/jpeg"}},
			Description: "d",
		}
		got := Item(&item, "Feed")
		if got.ImageURL != "https://cdn.example.com/enc.jpg" {
			t.Errorf("ImageURL = %q, want secure enclosure URL", got.ImageURL)
		}
	})

	t.Run("non-image enclosure is skipped", func(t *testing.T) {
		item := gofeed.Item{
			Title:      "a",
			Content:    `<img src="https://cdn.example.com/inline.jpg">`,
			Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/audio.mp3", Type: "audio/mpeg"}},
		}
		got := Item(&item, "Feed")
		if got.ImageURL != "https://cdn.example.com/inline.jpg" {
			t.Errorf("ImageURL = %q, want extracted inline image", got.ImageURL)
		}
	})

	t.Run("no image anywhere yields title placeholder", func(t *testing.T) {
		item := gofeed.Item{Title: "Cricket series win", Description: "plain text"}
		got := Item(&item, "Feed")
		if got.ImageURL != "https://placehold.co/400x250?text=Sports+News" {
			t.Errorf("ImageURL = %q, want sports placeholder", got.ImageURL)
		}
	})
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"tags stripped", "<p>hello <b>world</b></p>", "hello world"},
		{"entities unescaped", "fish &amp; chips", "fish & chips"},
		{"whitespace collapsed", "a\n\n  b\t c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snippet(tt.content); got != tt.expected {
				t.Errorf("Snippet(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}
