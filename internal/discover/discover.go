// ABOUTME: Finds candidate RSS/Atom feed URLs for a news site
// ABOUTME: Tries direct parse, HTML alternate links, then common feed paths

package discover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
)

// commonFeedPaths are probed against the site root when neither the URL
// itself nor its HTML advertise a feed.
var commonFeedPaths = []string{
	"/feed.xml",
	"/feed",
	"/rss.xml",
	"/rss",
	"/rssfeeds.cms",
	"/atom.xml",
	"/atom",
	"/index.xml",
	"/feed/rss",
	"/feeds/posts/default",
}

var (
	ErrNoFeedFound = errors.New("no RSS/Atom feed found at URL")
	ErrInvalidURL  = errors.New("invalid URL")
)

// Candidate is a feed URL that parsed successfully during discovery and is
// ready to paste into the sources section of a config file.
type Candidate struct {
	URL   string
	Title string
}

// Locator discovers feeds for news sites.
type Locator struct {
	client *http.Client
	parser *gofeed.Parser
}

// NewLocator creates a Locator. A nil client gets a 15 second default,
// matching the patience a human has for a one-off CLI probe.
func NewLocator(client *http.Client) *Locator {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Locator{client: client, parser: gofeed.NewParser()}
}

// Locate finds feed candidates for siteURL. It tries, in order:
//  1. Parsing siteURL itself as a feed
//  2. Parsing siteURL as HTML and following <link rel="alternate"> elements
//  3. Probing common feed paths against the site root
//
// Every returned candidate has been fetched and parsed as a valid feed.
// Returns ErrNoFeedFound when all strategies come up empty.
func (l *Locator) Locate(ctx context.Context, siteURL string) ([]Candidate, error) {
	parsedURL, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: missing scheme or host", ErrInvalidURL)
	}

	feed, body, err := l.tryFeed(ctx, siteURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", siteURL, err)
	}
	if feed != nil {
		return []Candidate{*feed}, nil
	}

	if candidates := l.verifyLinked(ctx, extractFeedLinks(body, parsedURL)); len(candidates) > 0 {
		return candidates, nil
	}

	if candidates := l.probeCommonPaths(ctx, parsedURL); len(candidates) > 0 {
		return candidates, nil
	}

	return nil, ErrNoFeedFound
}

// tryFeed fetches rawURL and attempts to parse the response as a feed.
// When the body is not a feed it is returned for HTML link extraction.
func (l *Locator) tryFeed(ctx context.Context, rawURL string) (*Candidate, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, nil, err
	}

	parsed, parseErr := l.parser.ParseString(string(body))
	if parseErr != nil {
		// Not a feed; hand the body back for HTML parsing.
		return nil, body, nil
	}
	return &Candidate{URL: rawURL, Title: parsed.Title}, body, nil
}

// verifyLinked fetches each advertised feed link and keeps the ones that
// actually parse, preferring the HTML title when the feed lacks one.
func (l *Locator) verifyLinked(ctx context.Context, linked []Candidate) []Candidate {
	var verified []Candidate
	for _, link := range linked {
		feed, _, err := l.tryFeed(ctx, link.URL)
		if err != nil || feed == nil {
			continue
		}
		if feed.Title == "" {
			feed.Title = link.Title
		}
		verified = append(verified, *feed)
	}
	return verified
}

// probeCommonPaths tries well-known feed locations against the site root and
// stops at the first one that parses.
func (l *Locator) probeCommonPaths(ctx context.Context, siteURL *url.URL) []Candidate {
	root := &url.URL{Scheme: siteURL.Scheme, Host: siteURL.Host}
	for _, path := range commonFeedPaths {
		feed, _, err := l.tryFeed(ctx, root.String()+path)
		if err == nil && feed != nil {
			return []Candidate{*feed}
		}
	}
	return nil
}

// extractFeedLinks walks an HTML document and collects every
// <link rel="alternate"> pointing at a feed content type, resolving
// relative hrefs against base.
func extractFeedLinks(htmlBody []byte, base *url.URL) []Candidate {
	doc, err := html.Parse(strings.NewReader(string(htmlBody)))
	if err != nil {
		return nil
	}

	var found []Candidate
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, linkType, href, title string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "rel":
					rel = attr.Val
				case "type":
					linkType = attr.Val
				case "href":
					href = attr.Val
				case "title":
					title = attr.Val
				}
			}
			if rel == "alternate" && isFeedContentType(linkType) && href != "" {
				if resolved, err := resolveURL(href, base); err == nil {
					found = append(found, Candidate{URL: resolved, Title: title})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func resolveURL(href string, base *url.URL) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

func isFeedContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "rss") ||
		strings.Contains(contentType, "atom") ||
		strings.Contains(contentType, "xml")
}
