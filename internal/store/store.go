// ABOUTME: In-memory submission store with a fixed capacity bound
// ABOUTME: Serializes mutation under one mutex; newest submissions first

package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/newswave/newswave/internal/images"
	"github.com/newswave/newswave/internal/models"
)

// DefaultCapacity is how many submissions are retained before the oldest
// is evicted.
const DefaultCapacity = 50

// Input carries the submission request fields. Title, Summary, Content,
// Category and Author are required; ImageURL is optional.
type Input struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
}

// ValidationError reports the required fields missing from a submission.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Store holds user-submitted articles for the process lifetime. All access
// goes through the mutex so concurrent HTTP requests cannot corrupt the list.
type Store struct {
	mu       sync.Mutex
	items    []*models.SubmittedArticle
	capacity int
}

// New creates a Store with DefaultCapacity.
func New() *Store {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates a Store bounded at capacity submissions.
func NewWithCapacity(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Submit validates the input, inserts a new submission at the head of the
// store and evicts from the tail past capacity. A *ValidationError is
// returned, and the store left untouched, when required fields are missing.
func (s *Store) Submit(in Input) (*models.SubmittedArticle, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"summary", in.Summary},
		{"content", in.Content},
		{"category", in.Category},
		{"author", in.Author},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	item := models.NewSubmittedArticle(
		in.Title, in.Summary, in.Content, in.Category, in.Author,
		images.EnsureSecure(in.ImageURL),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]*models.SubmittedArticle{item}, s.items...)
	if len(s.items) > s.capacity {
		s.items = s.items[:s.capacity]
	}
	return item, nil
}

// List returns the current submissions, newest first.
func (s *Store) List() []*models.SubmittedArticle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.SubmittedArticle, len(s.items))
	copy(out, s.items)
	return out
}

// Articles adapts the submissions to plain Articles for the aggregation
// merge, preserving newest-first order.
func (s *Store) Articles() []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Article, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Article)
	}
	return out
}

// Len reports how many submissions are currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
