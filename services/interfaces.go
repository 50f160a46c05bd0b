package services

import (
	"context"

	"github.com/gcbaptista/feedrank/model"
)

// CategorySource assigns a moderation category to a text.
// Implementations must be safe for concurrent use.
type CategorySource interface {
	Classify(ctx context.Context, text string) (model.Category, error)
}

// FeedProcessor runs the feed pipeline for a single interaction.
type FeedProcessor interface {
	// Classify assigns a category to every text, in order.
	Classify(ctx context.Context, texts []string) ([]model.Post, error)
	// Rerank orders posts and derives statistics and chart data.
	Rerank(ctx context.Context, posts []model.Post) model.FeedResult
	// Process classifies texts and, when withRerank is set, reranks them.
	Process(ctx context.Context, texts []string, withRerank bool) (model.FeedResult, error)
	// Statistics summarizes any collection without reordering it.
	Statistics(posts []model.Post) model.Statistics
	// Categories lists the priority table.
	Categories() []model.CategoryRank
	// PostCount is the number of texts Classify expects.
	PostCount() int
	// ChartRadius is the radius pie chart paths are drawn with.
	ChartRadius() float64
}
