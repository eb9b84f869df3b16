// ABOUTME: Image URL extraction from feed item content using ordered strategies
// ABOUTME: Falls back to title-keyword placeholders and coerces HTTP to HTTPS

package images

import (
	"regexp"
	"strings"
)

// A Strategy inspects raw item content and returns an image URL, or "" when
// it finds nothing. Strategies are tried in order; the first hit wins.
type Strategy func(content string) string

var (
	imgTagPattern     = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)
	mediaThumbPattern = regexp.MustCompile(`(?i)<media:thumbnail[^>]+url=["']([^"']+)["']`)
	bareURLPattern    = regexp.MustCompile(`(?i)(https?://[^\s"'<>]+?\.(?:jpg|jpeg|png|gif|webp))`)
)

// strategies is the extraction chain in priority order: an HTML img tag, a
// media thumbnail element, then any bare image URL in the text.
var strategies = []Strategy{
	matchPattern(imgTagPattern),
	matchPattern(mediaThumbPattern),
	matchPattern(bareURLPattern),
}

func matchPattern(re *regexp.Regexp) Strategy {
	return func(content string) string {
		if m := re.FindStringSubmatch(content); m != nil {
			return m[1]
		}
		return ""
	}
}

// Extract returns the first image URL found in content, HTTPS-coerced, or ""
// when content is empty or carries no recognizable image reference.
func Extract(content string) string {
	if content == "" {
		return ""
	}
	for _, strategy := range strategies {
		if url := strategy(content); url != "" {
			return EnsureSecure(url)
		}
	}
	return ""
}

// ExtractWithTitle behaves like Extract but never returns "" for a non-empty
// title: when no image is found in content, it falls back to a placeholder
// chosen by keyword-matching the title.
func ExtractWithTitle(content, title string) string {
	if url := Extract(content); url != "" {
		return url
	}
	return PlaceholderFor(title)
}

// placeholderRules maps title keywords to category placeholder images.
// Order matters: earlier rules shadow later ones.
var placeholderRules = []struct {
	keywords []string
	url      string
}{
	{[]string{"politic"}, "https://placehold.co/400x250?text=Politics+News"},
	{[]string{"cricket", "sport"}, "https://placehold.co/400x250?text=Sports+News"},
	{[]string{"business", "market"}, "https://placehold.co/400x250?text=Business+News"},
	{[]string{"technology", "tech"}, "https://placehold.co/400x250?text=Tech+News"},
	{[]string{"entertainment", "film", "movie"}, "https://placehold.co/400x250?text=Entertainment+News"},
	{[]string{"telugu", "hyderabad"}, "https://placehold.co/400x250?text=Telugu+News"},
	{[]string{"andhra", "amaravati"}, "https://placehold.co/400x250?text=Andhra+News"},
}

// genericPlaceholder is served when no keyword rule matches.
const genericPlaceholder = "https://placehold.co/400x250?text=Regional+News"

// PlaceholderFor picks a category-appropriate placeholder image for a title.
func PlaceholderFor(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range placeholderRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.url
			}
		}
	}
	return genericPlaceholder
}

// EnsureSecure rewrites an insecure http:// URL to https:// so feed images
// do not trigger mixed-content blocking in browsers.
func EnsureSecure(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
