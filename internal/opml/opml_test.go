// ABOUTME: Unit tests for OPML subscription parsing and writing
// ABOUTME: Covers flat lists, folders, dedup and round-trips

package opml

import (
	"bytes"
	"strings"
	"testing"
)

const sampleOPML = `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <head><title>News Subscriptions</title></head>
  <body>
    <outline text="Regional" title="Regional">
      <outline text="Eenadu" type="rss" xmlUrl="https://telugu.oneindia.com/rss/feeds/telugu-news-fb.xml"/>
      <outline text="Sakshi" type="rss" xmlUrl="https://www.sakshi.com/rss.xml"/>
    </outline>
    <outline text="TOI Movies" type="rss" xmlUrl="https://timesofindia.indiatimes.com/rssfeeds/1081479906.cms"/>
  </body>
</opml>`

func TestParse(t *testing.T) {
	subs, err := Parse(strings.NewReader(sampleOPML))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected 3 subscriptions, got %d", len(subs))
	}

	if subs[0].Folder != "Regional" {
		t.Errorf("expected folder %q, got %q", "Regional", subs[0].Folder)
	}
	if subs[0].Title != "Eenadu" {
		t.Errorf("expected title %q, got %q", "Eenadu", subs[0].Title)
	}
	if subs[2].Folder != "" {
		t.Errorf("expected top-level feed to have no folder, got %q", subs[2].Folder)
	}
	if subs[2].URL != "https://timesofindia.indiatimes.com/rssfeeds/1081479906.cms" {
		t.Errorf("unexpected URL: %q", subs[2].URL)
	}
}

func TestParseDeduplicatesURLs(t *testing.T) {
	const doc = `<opml version="2.0"><head/><body>
<outline text="First" type="rss" xmlUrl="https://example.com/feed"/>
<outline text="Second" type="rss" xmlUrl="https://example.com/feed"/>
</body></opml>`

	subs, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscription after dedup, got %d", len(subs))
	}
	if subs[0].Title != "First" {
		t.Errorf("expected first occurrence to win, got %q", subs[0].Title)
	}
}

func TestParseInvalidXML(t *testing.T) {
	_, err := Parse(strings.NewReader("not xml at all"))
	if err == nil {
		t.Fatal("expected error for invalid XML")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	subs := []Subscription{
		{URL: "https://example.com/a.xml", Title: "Feed A", Folder: "Regional"},
		{URL: "https://example.com/b.xml", Title: "Feed B", Folder: "Regional"},
		{URL: "https://example.com/c.xml", Title: "Feed C"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, "Exported Sources", subs); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `<title>Exported Sources</title>`) {
		t.Errorf("missing document title in output:\n%s", out)
	}

	parsed, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(parsed) != len(subs) {
		t.Fatalf("expected %d subscriptions after round-trip, got %d", len(subs), len(parsed))
	}
	for i, sub := range subs {
		if parsed[i].URL != sub.URL || parsed[i].Folder != sub.Folder {
			t.Errorf("subscription %d changed in round-trip: %+v vs %+v", i, parsed[i], sub)
		}
	}
}
