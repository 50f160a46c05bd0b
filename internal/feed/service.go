// Package feed runs the classify, rerank and summarize pipeline for one interaction.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gcbaptista/feedrank/config"
	"github.com/gcbaptista/feedrank/internal/chart"
	"github.com/gcbaptista/feedrank/internal/errors"
	"github.com/gcbaptista/feedrank/internal/metrics"
	"github.com/gcbaptista/feedrank/internal/rerank"
	"github.com/gcbaptista/feedrank/internal/stats"
	"github.com/gcbaptista/feedrank/model"
	"github.com/gcbaptista/feedrank/services"
)

// DefaultChartRadius is used when no radius option is given.
const DefaultChartRadius = 100.0

// Service implements services.FeedProcessor.
type Service struct {
	postCount   int
	source      services.CategorySource
	reranker    *rerank.Reranker
	hateful     stats.HatefulSet
	hatefulList []model.Category
	chartRadius float64
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics enables Prometheus recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithChartRadius sets the pie chart radius.
func WithChartRadius(radius float64) Option {
	return func(s *Service) { s.chartRadius = radius }
}

// NewService creates a feed service from settings and a category source.
func NewService(settings config.FeedSettings, source services.CategorySource, opts ...Option) (*Service, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, errors.NewValidationError("feed", fmt.Sprintf("%v", problems))
	}

	priority, err := rerank.NewPriority(settings.PriorityOrder)
	if err != nil {
		return nil, fmt.Errorf("building priority table: %w", err)
	}

	s := &Service{
		postCount:   settings.PostCount,
		source:      source,
		reranker:    rerank.NewReranker(priority),
		hateful:     stats.NewHatefulSet(settings.HatefulCategories),
		hatefulList: append([]model.Category(nil), settings.HatefulCategories...),
		chartRadius: DefaultChartRadius,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// PostCount is the number of texts Classify expects.
func (s *Service) PostCount() int {
	return s.postCount
}

// ChartRadius is the radius pie chart paths are drawn with.
func (s *Service) ChartRadius() float64 {
	return s.chartRadius
}

// Classify assigns a category to each text. texts must hold exactly PostCount entries;
// empty strings are allowed.
func (s *Service) Classify(ctx context.Context, texts []string) ([]model.Post, error) {
	if len(texts) != s.postCount {
		return nil, errors.NewPostCountError(s.postCount, len(texts))
	}

	start := time.Now()
	posts := make([]model.Post, len(texts))
	for i, text := range texts {
		category, err := s.source.Classify(ctx, text)
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordClassifyError()
			}
			s.logger.Warn("category source failed", zap.Int("position", i), zap.Error(err))
			return nil, errors.NewClassificationError(i, err)
		}
		posts[i] = model.Post{Text: text, Category: category}
	}

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordClassified(posts, elapsed.Seconds())
	}
	s.logger.Debug("classified feed",
		zap.Int("posts", len(posts)),
		zap.Duration("took", elapsed))

	return posts, nil
}

// Rerank orders posts by category priority and derives statistics and chart
// data from the reranked order. posts is not modified.
func (s *Service) Rerank(_ context.Context, posts []model.Post) model.FeedResult {
	start := time.Now()

	reranked := s.reranker.Rerank(posts)
	original := s.Statistics(posts)
	summary := s.Statistics(reranked)
	freqs := stats.Frequencies(reranked)

	result := model.FeedResult{
		InteractionID:      uuid.NewString(),
		Original:           posts,
		Reranked:           reranked,
		OriginalStatistics: &original,
		Statistics:         &summary,
		Frequencies:        freqs,
		Chart:              chart.Pie(freqs, s.chartRadius),
	}

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordReranked(summary.HatefulPercentage, elapsed.Seconds())
	}
	s.logger.Debug("reranked feed",
		zap.String("interaction_id", result.InteractionID),
		zap.Int("posts", len(posts)),
		zap.Float64("hateful_percentage", summary.HatefulPercentage),
		zap.Duration("took", elapsed))

	return result
}

// Process classifies texts and, when withRerank is set, reranks them.
func (s *Service) Process(ctx context.Context, texts []string, withRerank bool) (model.FeedResult, error) {
	posts, err := s.Classify(ctx, texts)
	if err != nil {
		return model.FeedResult{}, err
	}
	if !withRerank {
		return model.FeedResult{InteractionID: uuid.NewString(), Original: posts}, nil
	}
	return s.Rerank(ctx, posts), nil
}

// Statistics summarizes posts in whatever order they are given.
func (s *Service) Statistics(posts []model.Post) model.Statistics {
	return stats.Summarize(posts, s.hateful)
}

// Categories lists the priority table with hateful flags.
func (s *Service) Categories() []model.CategoryRank {
	priority := s.reranker.Priority()
	order := priority.Order()

	ranks := make([]model.CategoryRank, 0, len(order))
	for _, c := range order {
		ranks = append(ranks, model.CategoryRank{
			Category: c,
			Rank:     priority.Rank(c),
			Hateful:  s.hateful.Contains(c),
		})
	}
	return ranks
}

// HatefulCategories returns the configured hateful subset.
func (s *Service) HatefulCategories() []model.Category {
	return append([]model.Category(nil), s.hatefulList...)
}
