// Package metrics exposes Prometheus collectors for the feed pipeline.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gcbaptista/feedrank/model"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the feed pipeline.
type Metrics struct {
	FeedsTotal           *prometheus.CounterVec
	PostsClassifiedTotal *prometheus.CounterVec
	ClassifyErrorsTotal  prometheus.Counter
	HatefulPercentage    prometheus.Histogram
	StageDuration        *prometheus.HistogramVec
}

// Default returns the process-wide metrics registered with the default registry.
//
// sync.Once guards against "duplicate metrics collector registration" panics
// when several components ask for metrics.
//
// Metrics:
//   - feedrank_feeds_total{stage} - feeds that went through classify or rerank
//   - feedrank_posts_classified_total{category} - posts per assigned category
//   - feedrank_classify_errors_total - category source failures
//   - feedrank_hateful_percentage - distribution of the hateful share per reranked feed
//   - feedrank_stage_duration_seconds{stage} - pipeline stage latency
func Default() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = New(prometheus.DefaultRegisterer)
	})
	return globalMetrics
}

// New registers a fresh set of collectors with reg. Tests pass a private registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FeedsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedrank_feeds_total",
				Help: "Total number of feeds processed per pipeline stage",
			},
			[]string{"stage"}, // "classify" or "rerank"
		),

		PostsClassifiedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedrank_posts_classified_total",
				Help: "Total number of posts labelled, by category",
			},
			[]string{"category"},
		),

		ClassifyErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "feedrank_classify_errors_total",
				Help: "Total number of category source failures",
			},
		),

		HatefulPercentage: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "feedrank_hateful_percentage",
				Help:    "Share of hateful posts per reranked feed, 0-100",
				Buckets: prometheus.LinearBuckets(0, 20, 6), // 0, 20, ... 100
			},
		),

		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "feedrank_stage_duration_seconds",
				Help:    "Duration of feed pipeline stages in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
			},
			[]string{"stage"},
		),
	}
}

// RecordClassified records a classified feed.
func (m *Metrics) RecordClassified(posts []model.Post, durationSeconds float64) {
	m.FeedsTotal.WithLabelValues("classify").Inc()
	m.StageDuration.WithLabelValues("classify").Observe(durationSeconds)
	for _, p := range posts {
		m.PostsClassifiedTotal.WithLabelValues(string(p.Category)).Inc()
	}
}

// RecordClassifyError records a category source failure.
func (m *Metrics) RecordClassifyError() {
	m.ClassifyErrorsTotal.Inc()
}

// RecordReranked records a reranked feed and its hateful share.
func (m *Metrics) RecordReranked(hatefulPercentage, durationSeconds float64) {
	m.FeedsTotal.WithLabelValues("rerank").Inc()
	m.StageDuration.WithLabelValues("rerank").Observe(durationSeconds)
	m.HatefulPercentage.Observe(hatefulPercentage)
}
