// ABOUTME: Feed aggregation pipeline: tiered fetch, merge, dedup, sort, truncate
// ABOUTME: Isolates per-source failures and degrades to whatever sources succeed

package aggregate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/newswave/newswave/internal/models"
	"github.com/newswave/newswave/internal/normalize"
)

// ErrAllSourcesFailed signals total failure: every configured source in every
// attempted tier failed and no submissions were available. Callers substitute
// their static fallback payload; partial failure never raises this.
var ErrAllSourcesFailed = errors.New("all feed sources failed")

// DefaultMaxParallel bounds how many sources are fetched at once. Results are
// still assembled in listed source order, so parallelism is not observable.
const DefaultMaxParallel = 4

// FeedFetcher retrieves and parses one feed URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
}

// SubmissionSource exposes stored user submissions as plain articles.
type SubmissionSource interface {
	Articles() []models.Article
}

// Aggregator orchestrates fetching feed tiers and consolidating results.
// It owns no persistent state; every call re-fetches from scratch.
type Aggregator struct {
	fetcher     FeedFetcher
	submissions SubmissionSource
	logger      *slog.Logger
	maxParallel int
}

// New creates an Aggregator. submissions may be nil for callers that never
// merge user content (dedicated category feeds).
func New(fetcher FeedFetcher, submissions SubmissionSource, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		fetcher:     fetcher,
		submissions: submissions,
		logger:      logger,
		maxParallel: DefaultMaxParallel,
	}
}

// Aggregate runs the full pipeline: fetch every primary source, extend with
// the fallback tier when fewer than minAcceptable items were collected, merge
// stored submissions, dedup by title (first seen wins), sort newest first and
// truncate to limit.
func (a *Aggregator) Aggregate(ctx context.Context, primary, fallback []models.FeedSource, minAcceptable, limit int) ([]models.Article, error) {
	articles, failures := a.fetchTier(ctx, primary)
	attempted := len(primary)

	if len(articles) < minAcceptable && len(fallback) > 0 {
		more, fbFailures := a.fetchTier(ctx, fallback)
		articles = append(articles, more...)
		failures += fbFailures
		attempted += len(fallback)
	}

	if a.submissions != nil {
		articles = append(articles, a.submissions.Articles()...)
	}

	if len(articles) == 0 && attempted > 0 && failures == attempted {
		return nil, ErrAllSourcesFailed
	}

	return consolidate(articles, limit), nil
}

// FromSources aggregates a single source list without fallback tiering or
// submission merging. Used by the dedicated per-category feeds.
func (a *Aggregator) FromSources(ctx context.Context, sources []models.FeedSource, limit int) ([]models.Article, error) {
	articles, failures := a.fetchTier(ctx, sources)
	if len(articles) == 0 && len(sources) > 0 && failures == len(sources) {
		return nil, ErrAllSourcesFailed
	}
	return consolidate(articles, limit), nil
}

// fetchTier fetches every source in the tier with bounded parallelism.
// Per-source failures are logged and contribute zero items; results keep the
// listed source order regardless of completion order.
func (a *Aggregator) fetchTier(ctx context.Context, sources []models.FeedSource) ([]models.Article, int) {
	slots := make([][]models.Article, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxParallel)

	for i, src := range sources {
		g.Go(func() error {
			feed, err := a.fetcher.Fetch(gctx, src.URL)
			if err != nil {
				errs[i] = err
				return nil
			}
			slots[i] = normalizeFeed(feed, src.MaxItems)
			return nil
		})
	}
	// Goroutines only record errors in their slot, so Wait cannot fail.
	_ = g.Wait()

	var articles []models.Article
	failures := 0
	for i, src := range sources {
		if errs[i] != nil {
			failures++
			a.logger.Warn("feed source failed", "url", src.URL, "tier", src.Tier, "error", errs[i])
			continue
		}
		articles = append(articles, slots[i]...)
	}
	return articles, failures
}

func normalizeFeed(feed *gofeed.Feed, maxItems int) []models.Article {
	items := feed.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, normalize.Item(item, feed.Title))
	}
	return articles
}

// consolidate applies the final dedup/sort/truncate steps shared by every
// aggregation path.
func consolidate(articles []models.Article, limit int) []models.Article {
	unique := dedupByTitle(articles)
	sortByDate(unique)
	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// dedupByTitle keeps the first occurrence of each distinct title.
func dedupByTitle(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if _, dup := seen[a.Title]; dup {
			continue
		}
		seen[a.Title] = struct{}{}
		out = append(out, a)
	}
	return out
}
