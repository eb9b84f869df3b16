// ABOUTME: Static fallback payloads served when aggregation totally fails
// ABOUTME: Stable within a process so degraded responses are deterministic

package server

import (
	"fmt"
	"time"

	"github.com/newswave/newswave/internal/models"
)

// fallbackPubDate is fixed at startup so a degraded endpoint returns the
// same bytes on every call within one process.
var fallbackPubDate = time.Now().UTC().Format(time.RFC3339)

// fallbackSets holds the per-category degraded content: a title prefix, a
// placeholder image label and five summaries.
var fallbackSets = map[string]struct {
	titlePrefix string
	imageLabel  string
	summaries   [5]string
}{
	"news": {
		titlePrefix: "News Update",
		imageLabel:  "News+Image",
		summaries: [5]string{
			"Latest news updates from across the region",
			"More news updates covering current events",
			"Regional and national headline roundup",
			"Public interest stories and announcements",
			"Ongoing coverage of developing stories",
		},
	},
	"andhra": {
		titlePrefix: "Andhra Pradesh News Update",
		imageLabel:  "Andhra+News",
		summaries: [5]string{
			"Latest news from Andhra Pradesh covering politics, development, and regional updates",
			"More updates from the state with focus on infrastructure and economic growth",
			"Regional developments and policy changes affecting the state",
			"Local government initiatives and public welfare programs",
			"Education and healthcare improvements in Andhra Pradesh",
		},
	},
	"telangana": {
		titlePrefix: "Telangana News Update",
		imageLabel:  "Telangana+News",
		summaries: [5]string{
			"Latest news from Telangana covering politics, development, and regional updates",
			"More updates from the state with focus on infrastructure and economic growth",
			"Regional developments and policy changes affecting the state",
			"Local government initiatives and public welfare programs",
			"Education and healthcare improvements in Telangana",
		},
	},
	"politics": {
		titlePrefix: "Political News Update",
		imageLabel:  "Politics+News",
		summaries: [5]string{
			"Latest political developments and government policy changes",
			"Election updates and political party developments",
			"Parliament and legislative assembly updates",
			"National and state political developments",
			"Political leader activities and public meetings",
		},
	},
	"tech": {
		titlePrefix: "Technology News Update",
		imageLabel:  "Tech+News",
		summaries: [5]string{
			"Latest technology and innovation news covering AI, gadgets, and digital trends",
			"Software updates and tech industry developments",
			"Gadget launches and product reviews",
			"Cybersecurity updates and digital privacy news",
			"Startups and innovation ecosystem developments",
		},
	},
	"telugu": {
		titlePrefix: "తెలుగు వార్తలు",
		imageLabel:  "తెలుగు+వార్త",
		summaries: [5]string{
			"తెలుగు వార్తల నవీకరణలు",
			"మరిన్ని తెలుగు వార్తలు",
			"ఆంధ్ర ప్రదేశ్ నుండి తాజా వార్తలు",
			"తెలుగు జాతీయ వార్తలు",
			"హైదరాబాద్ నుండి తాజా వార్తలు",
		},
	},
	"movies": {
		titlePrefix: "Entertainment News Update",
		imageLabel:  "Movies+News",
		summaries: [5]string{
			"Latest movie industry news and film releases",
			"Celebrity updates and entertainment industry developments",
			"Bollywood and Tollywood film updates",
			"Box office collections and upcoming movie releases",
			"Award shows and entertainment event coverage",
		},
	},
	"sports": {
		titlePrefix: "Sports News Update",
		imageLabel:  "Sports+News",
		summaries: [5]string{
			"Latest sports news and updates from cricket, football, and other games",
			"Match results and player performance updates",
			"International and domestic tournament updates",
			"Olympics and major sporting events coverage",
			"Athlete achievements and sports development initiatives",
		},
	},
	"business": {
		titlePrefix: "Business News Update",
		imageLabel:  "Business+News",
		summaries: [5]string{
			"Latest business and economy news covering market trends and investments",
			"Corporate developments and economic policies updates",
			"Stock market updates and financial sector news",
			"Industry growth and business opportunities",
			"Trade and commerce updates from national and international markets",
		},
	},
}

// fallbackFor builds the static payload for a category, defaulting to the
// generic news payload for unknown keys.
func fallbackFor(key string) []models.Article {
	set, ok := fallbackSets[key]
	if !ok {
		set = fallbackSets["news"]
	}

	articles := make([]models.Article, 0, len(set.summaries))
	for i, summary := range set.summaries {
		articles = append(articles, models.Article{
			Title:    fmt.Sprintf("%s %d", set.titlePrefix, i+1),
			Summary:  summary,
			Link:     "#",
			PubDate:  fallbackPubDate,
			Source:   "News Service",
			ImageURL: "https://placehold.co/300x200?text=" + set.imageLabel,
		})
	}
	return articles
}
