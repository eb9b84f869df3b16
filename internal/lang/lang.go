// ABOUTME: Translation lookup service backed by a YAML language file
// ABOUTME: Supports dot-path keys with default-language fallback

package lang

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language describes one supported language for the languages endpoint.
type Language struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

// fileSchema is the on-disk YAML layout.
type fileSchema struct {
	Default   string `yaml:"default"`
	Languages map[string]struct {
		Name      string `yaml:"name"`
		Direction string `yaml:"direction"`
	} `yaml:"languages"`
	Translations map[string]map[string]any `yaml:"translations"`
}

// Service resolves translations for the configured languages.
type Service struct {
	defaultLang  string
	languages    []Language
	translations map[string]map[string]any
}

// Load reads a language file. The file must declare a default language that
// appears in its translations table.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Service, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse language file: %w", err)
	}
	if schema.Default == "" {
		return nil, fmt.Errorf("language file missing default language")
	}
	if _, ok := schema.Translations[schema.Default]; !ok {
		return nil, fmt.Errorf("default language %q has no translations", schema.Default)
	}

	languages := make([]Language, 0, len(schema.Languages))
	for code, info := range schema.Languages {
		languages = append(languages, Language{Code: code, Name: info.Name, Direction: info.Direction})
	}
	sort.Slice(languages, func(i, j int) bool { return languages[i].Code < languages[j].Code })

	return &Service{
		defaultLang:  schema.Default,
		languages:    languages,
		translations: schema.Translations,
	}, nil
}

// Default returns a Service with the built-in language set, used when no
// language file is configured.
func Default() *Service {
	svc, err := parse([]byte(defaultLanguageYAML))
	if err != nil {
		// The built-in file is compile-time data; failing to parse it is a
		// programming error.
		panic(err)
	}
	return svc
}

// Supported lists the configured languages, ordered by code.
func (s *Service) Supported() []Language {
	out := make([]Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// IsSupported reports whether code has a translations table.
func (s *Service) IsSupported(code string) bool {
	_, ok := s.translations[code]
	return ok
}

// Translations returns the full translation map for a language, or the
// default language's map when the code is unknown.
func (s *Service) Translations(code string) map[string]any {
	if t, ok := s.translations[code]; ok {
		return t
	}
	return s.translations[s.defaultLang]
}

// Translation resolves a dot-path key ("nav.home") in the given language.
// Misses retry the default language; a miss there returns the key itself.
func (s *Service) Translation(code, key string) string {
	table, ok := s.translations[code]
	if !ok {
		table = s.translations[s.defaultLang]
	}
	if v, found := walk(table, key); found {
		return v
	}
	if v, found := walk(s.translations[s.defaultLang], key); found {
		return v
	}
	return key
}

// walk follows a dot-path through nested maps to a string leaf.
func walk(table map[string]any, key string) (string, bool) {
	var current any = table
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}
	leaf, ok := current.(string)
	return leaf, ok
}
