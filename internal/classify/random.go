// Package classify provides category sources for the feed pipeline.
package classify

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gcbaptista/feedrank/model"
)

// RandomSource draws categories uniformly, with replacement, from a fixed set.
// It stands in for a real classifier.
type RandomSource struct {
	mu         sync.Mutex
	rng        *rand.Rand
	categories []model.Category
}

// NewRandomSource creates a source over categories. A zero seed seeds from the clock.
func NewRandomSource(categories []model.Category, seed uint64) *RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSource{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		categories: append([]model.Category(nil), categories...),
	}
}

// Classify ignores text and returns a random category.
func (s *RandomSource) Classify(ctx context.Context, _ string) (model.Category, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.categories) == 0 {
		return "", ErrNoCategories
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories[s.rng.IntN(len(s.categories))], nil
}
