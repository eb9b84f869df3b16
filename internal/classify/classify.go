// ABOUTME: Keyword-based category classification for articles
// ABOUTME: Keeps category keyword sets as data so new categories are configuration

package classify

import (
	"strings"

	"github.com/newswave/newswave/internal/models"
)

// Category display names used by the HTTP layer.
const (
	Telangana = "Telangana State"
	Andhra    = "Andhra Pradesh"
	Politics  = "Politics"
	Tech      = "Tech"
	Telugu    = "Telugu"
)

// keywordSets maps a lowercased category name to the substrings that place
// an article in that category. This is a deterministic heuristic, not a
// trained classifier; false positives are acceptable by contract.
var keywordSets = map[string][]string{
	"telangana state": {"telangana", "hyderabad", "secunderabad", "warangal"},
	"andhra pradesh":  {"andhra", "amaravati", "vijayawada", "visakhapatnam"},
	"politics":        {"politic", "government", "election", "minister"},
	"tech":            {"tech", "technology", "digital", "software", "ai", "gadget", "internet"},
	"telugu": {
		"telugu", "andhra", "hyderabad", "amaravati", "vijayawada",
		"visakhapatnam", "guntur", "nellore", "telangana",
	},
}

// Matches reports whether an article belongs to the named category: either
// its explicit category tag matches, or (for a known category) its title or
// summary contains one of the category's keywords. All comparisons are
// case-insensitive. Unknown category names fall back to tag equality only.
func Matches(a models.Article, category string) bool {
	if strings.EqualFold(a.Category, category) && a.Category != "" {
		return true
	}

	keywords, ok := keywordSets[strings.ToLower(category)]
	if !ok {
		return false
	}

	title := strings.ToLower(a.Title)
	summary := strings.ToLower(a.Summary)
	for _, kw := range keywords {
		if strings.Contains(title, kw) || strings.Contains(summary, kw) {
			return true
		}
	}
	return false
}

// Filter returns the articles matching the named category, preserving order.
func Filter(articles []models.Article, category string) []models.Article {
	matched := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if Matches(a, category) {
			matched = append(matched, a)
		}
	}
	return matched
}
