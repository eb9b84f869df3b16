// ABOUTME: OPML subscription list parsing and writing
// ABOUTME: Bridges exported reader subscriptions and the feed source config

package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Subscription is one feed entry from an OPML subscription list.
type Subscription struct {
	URL    string
	Title  string
	Folder string
}

type opmlXML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    headXML  `xml:"head"`
	Body    bodyXML  `xml:"body"`
}

type headXML struct {
	Title string `xml:"title"`
}

type bodyXML struct {
	Outlines []outlineXML `xml:"outline"`
}

type outlineXML struct {
	Text     string       `xml:"text,attr"`
	Title    string       `xml:"title,attr,omitempty"`
	Type     string       `xml:"type,attr,omitempty"`
	XMLURL   string       `xml:"xmlUrl,attr,omitempty"`
	Children []outlineXML `xml:"outline,omitempty"`
}

// Parse reads an OPML document and returns its feed subscriptions as a flat
// list. Folder outlines contribute their name to the nested feeds; duplicate
// URLs keep the first occurrence.
func Parse(r io.Reader) ([]Subscription, error) {
	var doc opmlXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode OPML: %w", err)
	}

	seen := make(map[string]bool)
	var subs []Subscription
	var walk func(outlines []outlineXML, folder string)
	walk = func(outlines []outlineXML, folder string) {
		for _, o := range outlines {
			if o.XMLURL != "" {
				if seen[o.XMLURL] {
					continue
				}
				seen[o.XMLURL] = true
				title := o.Title
				if title == "" {
					title = o.Text
				}
				subs = append(subs, Subscription{URL: o.XMLURL, Title: title, Folder: folder})
				continue
			}
			name := o.Text
			if name == "" {
				name = o.Title
			}
			walk(o.Children, name)
		}
	}
	walk(doc.Body.Outlines, "")
	return subs, nil
}

// ParseFile reads subscriptions from an OPML file on disk.
func ParseFile(path string) ([]Subscription, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Write serializes subscriptions as an OPML 2.0 document. Subscriptions that
// share a Folder are grouped under one folder outline, in first-seen order.
func Write(w io.Writer, title string, subs []Subscription) error {
	doc := opmlXML{
		Version: "2.0",
		Head:    headXML{Title: title},
	}

	folders := make(map[string]int)
	for _, sub := range subs {
		entry := outlineXML{
			Text:   sub.Title,
			Title:  sub.Title,
			Type:   "rss",
			XMLURL: sub.URL,
		}
		if sub.Folder == "" {
			doc.Body.Outlines = append(doc.Body.Outlines, entry)
			continue
		}
		idx, ok := folders[sub.Folder]
		if !ok {
			doc.Body.Outlines = append(doc.Body.Outlines, outlineXML{Text: sub.Folder, Title: sub.Folder})
			idx = len(doc.Body.Outlines) - 1
			folders[sub.Folder] = idx
		}
		doc.Body.Outlines[idx].Children = append(doc.Body.Outlines[idx].Children, entry)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode OPML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
