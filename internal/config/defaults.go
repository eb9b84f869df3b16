// ABOUTME: Compiled-in default configuration
// ABOUTME: Mirrors the production feed tiers, CORS origins and proxy allow-list

package config

import (
	"time"

	"github.com/newswave/newswave/internal/models"
)

// Defaults returns the full default configuration. Every field can be
// overridden from the YAML config file.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: "",
			Port: 3000,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:3001",
				"http://127.0.0.1:3001",
				"http://localhost:8080",
				"http://127.0.0.1:8080",
				"http://localhost:5173",
				"http://127.0.0.1:5173",
				"https://*.vercel.app",
			},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Feeds: FeedsConfig{
			Primary: []SourceConfig{
				{URL: "https://www.greatandhra.com/rss.xml", MaxItems: 80},
				{URL: "https://www.sakshi.com/rss/latest.xml", MaxItems: 80},
				{URL: "https://www.eenadu.net/rss/home", MaxItems: 80},
				{URL: "https://www.thehindu.com/feeder/default.rss", MaxItems: 80},
				{URL: "https://www.deccanchronicle.com/rss_feed", MaxItems: 80},
			},
			Fallback: []SourceConfig{
				{URL: "https://news.google.com/rss?hl=te-IN&gl=IN&ceid=IN:te", MaxItems: 50},
				{URL: "https://timesofindia.indiatimes.com/rssfeedstopstories.cms", MaxItems: 50},
				{URL: "https://feeds.bbci.co.uk/news/world/rss.xml", MaxItems: 50},
			},
			Categories: map[string][]SourceConfig{
				"movies": {
					{URL: "https://timesofindia.indiatimes.com/rssfeeds/1081479906.cms", MaxItems: 20},
				},
				"sports": {
					{URL: "https://timesofindia.indiatimes.com/rssfeeds/4719148.cms", MaxItems: 20},
				},
				"business": {
					{URL: "https://timesofindia.indiatimes.com/rssfeeds/1898055.cms", MaxItems: 20},
				},
			},
		},
		Aggregation: AggregationConfig{
			MinAcceptable:  50,
			ResultLimit:    200,
			CategoryLimit:  20,
			UnfilteredHead: 10,
			FetchTimeout:   Duration(10 * time.Second),
			RefreshWindow:  0,
		},
		Proxy: ProxyConfig{
			AllowedDomains: []string{"youtube.com", "googlevideo.com", "ytimg.com"},
		},
		Videos: []models.Video{
			{Title: "TV9 Telugu", URL: "https://www.youtube.com/embed/X9RANzv6VnE"},
			{Title: "ABN Andhra Jyothi", URL: "https://www.youtube.com/embed/4vG2C8YQyX8"},
			{Title: "NTV Telugu", URL: "https://www.youtube.com/embed/wxgfbo9CG2A"},
			{Title: "Sakshi TV", URL: "https://www.youtube.com/embed/oIxC4NokhT8"},
			{Title: "T News", URL: "https://www.youtube.com/embed/JU-0m8b9z3A"},
		},
	}
}
