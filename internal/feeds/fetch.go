// ABOUTME: Feed fetching via gofeed with per-source timeout and user agent
// ABOUTME: Treats every upstream as unreliable and bounds each fetch independently

package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultTimeout bounds a single source fetch so one slow upstream cannot
// stall a whole aggregation pass.
const DefaultTimeout = 10 * time.Second

// userAgent mirrors a browser UA; several regional feeds reject unknown bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) NewsWave/1.0"

// Fetcher retrieves and parses RSS/Atom feeds.
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// New creates a Fetcher. A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}
	return &Fetcher{parser: parser, timeout: timeout}
}

// Fetch retrieves and parses the feed at url. The fetch is bounded by the
// fetcher's timeout in addition to whatever deadline ctx already carries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}
	return feed, nil
}
