// ABOUTME: Article model representing a normalized news item from any source
// ABOUTME: Defines the JSON wire shape shared by feed items and user submissions

package models

// Article is the canonical unit served by every news endpoint. Items coming
// from RSS/Atom feeds and user submissions are both flattened into this shape.
type Article struct {
	// Title doubles as the deduplication key during aggregation.
	Title string `json:"title"`
	// Summary is best-effort plain text and may be empty.
	Summary string `json:"summary"`
	Link    string `json:"link"`
	// PubDate keeps the source-native date string. It is parsed lazily when
	// results are sorted, never rewritten.
	PubDate  string `json:"pubDate"`
	Source   string `json:"source"`
	ImageURL string `json:"image_url"`
	// Category is only set for user submissions. Feed-derived articles carry
	// no explicit tag and are classified by keyword instead.
	Category string `json:"category,omitempty"`
}

// FeedTier distinguishes the two source tiers tried during aggregation.
type FeedTier string

const (
	TierPrimary  FeedTier = "primary"
	TierFallback FeedTier = "fallback"
)

// FeedSource is one external RSS/Atom endpoint.
type FeedSource struct {
	URL string `yaml:"url" json:"url"`
	// MaxItems caps how many items a single source may contribute.
	MaxItems int      `yaml:"max_items" json:"max_items"`
	Tier     FeedTier `yaml:"-" json:"-"`
}

// Video is a static embed reference served by the videos endpoint.
type Video struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}
