// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat requests by HTTP status",
		},
		[]string{"status"},
	)

	IntentResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_resolutions_total",
			Help: "Total number of intent resolutions by intent tag",
		},
		[]string{"intent"},
	)

	GenAICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genai_calls_total",
			Help: "Total number of generation API calls by outcome",
		},
		[]string{"outcome"},
	)

	ChatRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chat_request_duration_seconds",
			Help: "Duration of chat request processing in seconds",
		},
		[]string{"intent"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_lookups_total",
			Help: "Total number of response cache lookups by result",
		},
		[]string{"result"},
	)
)
