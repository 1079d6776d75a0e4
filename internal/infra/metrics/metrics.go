package metrics

import (
	"github.com/NewsReader/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProxyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_proxy_requests_total",
			Help: "Proxy requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	ProxyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_proxy_request_duration_seconds",
			Help:    "End-to-end duration of proxy requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_upstream_request_duration_seconds",
			Help:    "Duration of the outbound call to the headlines API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	UpstreamResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_upstream_responses_total",
			Help: "Upstream answers by endpoint and HTTP status (\"error\" for transport failures)",
		},
		[]string{"endpoint", "status"},
	)
)

// Outcome labels for ProxyRequests.
const (
	OutcomeSuccess       = "success"
	OutcomeConfiguration = "configuration_error"
	OutcomeUpstream      = "upstream_error"
	OutcomeExecution     = "execution_error"
)

// EndpointOther stands in for any endpoint the proxy has no dedicated series for.
const EndpointOther = "other"

// EndpointLabel maps the client-supplied endpoint onto a fixed label set so
// arbitrary query strings cannot mint new series.
func EndpointLabel(endpoint string) string {
	switch endpoint {
	case domain.EndpointTopHeadlines, domain.EndpointEverything:
		return endpoint
	default:
		return EndpointOther
	}
}
