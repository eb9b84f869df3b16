// ABOUTME: SubmittedArticle model for user-authored news items
// ABOUTME: Wraps Article with identity, authorship and creation metadata

package models

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// maxLinkTitleLen bounds the title prefix used in the synthetic article link.
const maxLinkTitleLen = 50

// SubmittedArticle is a user-authored article. It lives only in process
// memory and is merged into aggregation results alongside feed items.
type SubmittedArticle struct {
	ID string `json:"id"`
	Article
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSubmittedArticle builds a submission with a generated ID and creation
// timestamp. The link is a synthetic fragment route derived from the title,
// matching what the frontend expects for locally submitted items.
func NewSubmittedArticle(title, summary, content, category, author, imageURL string) *SubmittedArticle {
	now := time.Now().UTC()

	source := author
	if source == "" {
		source = "Submitted News"
	}

	return &SubmittedArticle{
		ID: uuid.New().String(),
		Article: Article{
			Title:    title,
			Summary:  summary,
			Link:     "#/article/" + url.PathEscape(truncate(title, maxLinkTitleLen)),
			PubDate:  now.Format(time.RFC3339),
			Source:   source,
			ImageURL: imageURL,
			Category: category,
		},
		Author:    author,
		Content:   content,
		CreatedAt: now,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
