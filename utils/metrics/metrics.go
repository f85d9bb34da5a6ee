package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP-level metrics recorded by the metrics middleware.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "Total number of HTTP requests handled, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Article lifecycle metrics recorded by the usecases.
var (
	ArticlesPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_articles_published_total",
			Help: "Total number of articles created in the published state or promoted from draft.",
		},
	)

	DraftAutoSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_draft_autosaves_total",
			Help: "Total number of auto-save operations, by outcome (updated, created, failed).",
		},
		[]string{"outcome"},
	)

	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_article_views_total",
			Help: "Total number of successful single-article fetches (view increments).",
		},
	)

	LikeTogglesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_like_toggles_total",
			Help: "Total number of like toggle operations.",
		},
	)
)
