// ABOUTME: Converts raw gofeed items into canonical Articles
// ABOUTME: Applies field fallback chains, snippet cleanup and image resolution

package normalize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/newswave/newswave/internal/images"
	"github.com/newswave/newswave/internal/models"
)

// UnknownSource is used when a feed carries no display title.
const UnknownSource = "Unknown Source"

// stripPolicy removes every tag, leaving plain text for summaries.
var stripPolicy = bluemonday.StrictPolicy()

// Item maps a raw feed entry into the canonical Article shape. Each field is
// derived by a first-non-empty fallback chain over the heterogeneous places
// feeds put their data.
func Item(item *gofeed.Item, feedTitle string) models.Article {
	source := feedTitle
	if source == "" {
		source = UnknownSource
	}

	link := item.Link
	if link == "" {
		link = item.GUID
	}

	pubDate := item.Published
	if pubDate == "" {
		pubDate = item.Updated
	}

	summary := Snippet(item.Content)
	if summary == "" {
		summary = Snippet(item.Description)
	}

	return models.Article{
		Title:    item.Title,
		Summary:  summary,
		Link:     link,
		PubDate:  pubDate,
		Source:   source,
		ImageURL: imageURL(item),
	}
}

// imageURL resolves an item's image: an explicit enclosure wins, then the
// extraction chain over rich content and description, then the title-keyword
// placeholder. The result is always HTTPS-coerced.
func imageURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc.URL != "" && (enc.Type == "" || strings.HasPrefix(enc.Type, "image/")) {
			return images.EnsureSecure(enc.URL)
		}
	}
	return images.ExtractWithTitle(item.Content+item.Description, item.Title)
}

// Snippet reduces HTML content to a single line of plain text: tags stripped,
// entities unescaped, whitespace collapsed.
func Snippet(content string) string {
	if content == "" {
		return ""
	}
	text := stripPolicy.Sanitize(content)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
