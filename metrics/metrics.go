package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks HTTP handler latency per route
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reybanpac_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// ChatCompletions counts completion outcomes: success or fallback
	ChatCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reybanpac_chat_completions_total",
			Help: "Chatbot completion requests by outcome",
		},
		[]string{"outcome"},
	)

	// ChatSendsDropped counts sends rejected without issuing a request
	ChatSendsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reybanpac_chat_sends_dropped_total",
			Help: "Chatbot sends dropped before reaching the completion service",
		},
		[]string{"reason"},
	)

	ChatSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reybanpac_chat_sessions_active",
			Help: "Open chatbot sessions",
		},
	)
)

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
