// Package testing provides utilities and helpers for testing the feed pipeline.
package testing

import (
	"fmt"
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/feedrank/config"
	"github.com/gcbaptista/feedrank/internal/classify"
	"github.com/gcbaptista/feedrank/internal/feed"
	"github.com/gcbaptista/feedrank/internal/metrics"
	"github.com/gcbaptista/feedrank/internal/rerank"
	"github.com/gcbaptista/feedrank/model"
)

// ExampleCategories is the canonical five-post example and its reranked order.
var (
	ExampleCategories = []model.Category{
		model.CategoryPositive,
		model.CategorySexist,
		model.CategoryHateSpeech,
		model.CategoryNotHateSpeech,
		model.CategoryPositive,
	}
	ExampleRerankedCategories = []model.Category{
		model.CategoryPositive,
		model.CategoryPositive,
		model.CategoryHateSpeech,
		model.CategorySexist,
		model.CategoryNotHateSpeech,
	}
)

// CreateTestService creates a feed service with default settings whose
// category source replays categories, and a private metrics registry.
func CreateTestService(t *testing.T, categories ...model.Category) (*feed.Service, *classify.FixedSource) {
	t.Helper()

	if len(categories) == 0 {
		categories = ExampleCategories
	}
	source := classify.NewFixedSource(categories...)

	svc, err := feed.NewService(config.DefaultFeedSettings(), source,
		feed.WithMetrics(metrics.New(prometheus.NewRegistry())))
	require.NoError(t, err, "Failed to create test feed service")

	return svc, source
}

// Texts returns n distinct placeholder texts.
func Texts(n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("sentence %d", i+1)
	}
	return texts
}

// PostsWith builds posts whose texts record their input position.
func PostsWith(categories ...model.Category) []model.Post {
	posts := make([]model.Post, len(categories))
	for i, c := range categories {
		posts[i] = model.Post{Text: fmt.Sprintf("sentence %d", i+1), Category: c}
	}
	return posts
}

// AssertRanksNonDecreasing verifies that posts are in priority order.
func AssertRanksNonDecreasing(t *testing.T, priority *rerank.Priority, posts []model.Post) {
	t.Helper()

	ranks := make([]int, len(posts))
	for i, p := range posts {
		ranks[i] = priority.Rank(p.Category)
	}
	assert.True(t, slices.IsSorted(ranks), "ranks should be non-decreasing, got %v", ranks)
}
