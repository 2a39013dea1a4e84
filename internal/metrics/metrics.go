package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolscout_http_requests_total",
		Help: "HTTP requests served, by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "toolscout_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"method", "route"})

	QuizScoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "toolscout_quiz_scored_total",
		Help: "Quiz submissions scored.",
	})

	CompareResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolscout_compare_resolutions_total",
		Help: "Comparison slug resolutions, by outcome.",
	}, []string{"outcome"})

	AffiliateClicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolscout_affiliate_clicks_total",
		Help: "Affiliate redirects served, by tool slug.",
	}, []string{"tool"})

	EventPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "toolscout_event_publish_failures_total",
		Help: "Failed NATS event publications.",
	})
)
