// ABOUTME: Tests for the gofeed-backed feed fetcher
// ABOUTME: Uses httptest upstreams to cover success, HTTP errors and timeouts

package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First Post</title>
      <link>https://example.com/post/1</link>
      <pubDate>Mon, 02 Jan 2006 15:04:05 MST</pubDate>
      <description>First post description</description>
    </item>
  </channel>
</rss>`

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	f := New(5 * time.Second)
	feed, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if feed.Title != "Test Feed" {
		t.Errorf("feed title = %q, want %q", feed.Title, "Test Feed")
	}
	if len(feed.Items) != 1 {
		t.Errorf("got %d items, want 1", len(feed.Items))
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := New(5 * time.Second)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 503 upstream, got nil")
	}
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	f := New(100 * time.Millisecond)
	start := time.Now()
	_, err := f.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("fetch took %v, timeout not enforced", elapsed)
	}
}

func TestFetchUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	f := New(5 * time.Second)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
