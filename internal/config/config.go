// ABOUTME: Configuration loading with YAML file and environment overrides
// ABOUTME: Ships compiled-in defaults so the server runs with no config file

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/newswave/newswave/internal/models"
)

const (
	portEnv = "NEWSWAVE_PORT"
	addrEnv = "NEWSWAVE_ADDR"
)

// Duration wraps time.Duration so config values can be written as "10s".
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds every runtime setting.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	CORS        CORSConfig        `yaml:"cors"`
	Feeds       FeedsConfig       `yaml:"feeds"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Proxy       ProxyConfig       `yaml:"proxy"`
	Lang        LangConfig        `yaml:"lang"`
	Videos      []models.Video    `yaml:"videos"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Port int    `yaml:"port"`
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Addr, s.Port)
}

type CORSConfig struct {
	// AllowOrigins supports wildcard subdomain patterns like
	// "https://*.vercel.app".
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// SourceConfig is one feed endpoint in the config file.
type SourceConfig struct {
	URL      string `yaml:"url"`
	MaxItems int    `yaml:"max_items"`
}

type FeedsConfig struct {
	Primary  []SourceConfig `yaml:"primary"`
	Fallback []SourceConfig `yaml:"fallback"`
	// Categories maps a category name (movies, sports, business) to its
	// dedicated feed list.
	Categories map[string][]SourceConfig `yaml:"categories"`
}

type AggregationConfig struct {
	// MinAcceptable is the item count below which the fallback tier is tried.
	MinAcceptable int `yaml:"min_acceptable"`
	// ResultLimit caps the full news listing.
	ResultLimit int `yaml:"result_limit"`
	// CategoryLimit caps each category listing.
	CategoryLimit int `yaml:"category_limit"`
	// UnfilteredHead is how many unfiltered articles a category endpoint
	// serves when classification matches nothing.
	UnfilteredHead int `yaml:"unfiltered_head"`
	// FetchTimeout bounds each individual source fetch.
	FetchTimeout Duration `yaml:"fetch_timeout"`
	// RefreshWindow caches the full aggregate for this long; zero disables
	// caching so every request re-fetches from scratch.
	RefreshWindow Duration `yaml:"refresh_window"`
}

type ProxyConfig struct {
	// AllowedDomains are the upstream hosts the HLS proxy will fetch from.
	// A host is allowed when it equals a domain or is a subdomain of one.
	AllowedDomains []string `yaml:"allowed_domains"`
}

type LangConfig struct {
	// Path to the YAML language file; empty uses the built-in language set.
	Path string `yaml:"path"`
}

// Load reads configuration from path, merged over the defaults. An empty
// path returns the defaults. NEWSWAVE_ADDR and NEWSWAVE_PORT override the
// listen address.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv(addrEnv); addr != "" {
		cfg.Server.Addr = addr
	}
	if port := os.Getenv(portEnv); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", portEnv, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Aggregation.ResultLimit <= 0 {
		return fmt.Errorf("result_limit must be positive")
	}
	if len(c.Feeds.Primary) == 0 {
		return fmt.Errorf("no primary feed sources configured")
	}
	return nil
}

// PrimarySources converts the configured primary tier to model sources.
func (c *Config) PrimarySources() []models.FeedSource {
	return toSources(c.Feeds.Primary, models.TierPrimary)
}

// FallbackSources converts the configured fallback tier to model sources.
func (c *Config) FallbackSources() []models.FeedSource {
	return toSources(c.Feeds.Fallback, models.TierFallback)
}

// CategorySources returns the dedicated feed list for a category, or nil.
func (c *Config) CategorySources(category string) []models.FeedSource {
	return toSources(c.Feeds.Categories[category], models.TierPrimary)
}

func toSources(configs []SourceConfig, tier models.FeedTier) []models.FeedSource {
	out := make([]models.FeedSource, 0, len(configs))
	for _, sc := range configs {
		out = append(out, models.FeedSource{URL: sc.URL, MaxItems: sc.MaxItems, Tier: tier})
	}
	return out
}

// AllSources flattens every configured source across tiers and categories,
// used by the check command.
func (c *Config) AllSources() []models.FeedSource {
	out := c.PrimarySources()
	out = append(out, c.FallbackSources()...)
	for category := range c.Feeds.Categories {
		out = append(out, c.CategorySources(category)...)
	}
	return out
}
