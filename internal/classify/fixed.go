package classify

import (
	"context"
	"errors"
	"sync"

	"github.com/gcbaptista/feedrank/model"
)

// ErrNoCategories is returned by a source that has nothing to draw from.
var ErrNoCategories = errors.New("category source has no categories")

// FixedSource returns a scripted sequence of categories, wrapping around at the end.
type FixedSource struct {
	mu         sync.Mutex
	next       int
	categories []model.Category
}

// NewFixedSource creates a source that yields categories in order.
func NewFixedSource(categories ...model.Category) *FixedSource {
	return &FixedSource{categories: append([]model.Category(nil), categories...)}
}

// Classify returns the next scripted category.
func (s *FixedSource) Classify(ctx context.Context, _ string) (model.Category, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.categories) == 0 {
		return "", ErrNoCategories
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.categories[s.next]
	s.next = (s.next + 1) % len(s.categories)
	return c, nil
}

// Reset rewinds the sequence to its start.
func (s *FixedSource) Reset() {
	s.mu.Lock()
	s.next = 0
	s.mu.Unlock()
}
