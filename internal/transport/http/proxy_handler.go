package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/infra/metrics"
)

// Forwarder is the part of the proxy that talks to the upstream.
type Forwarder interface {
	Forward(ctx context.Context, req domain.ProxyRequest) ([]byte, error)
}

type errorBody struct {
	Message string `json:"message"`
}

// ProxyHandler adapts Forwarder to the HTTP contract: upstream JSON on
// success, {"message": ...} with the mapped status otherwise.
type ProxyHandler struct {
	forwarder Forwarder
}

func NewProxyHandler(forwarder Forwarder) *ProxyHandler {
	return &ProxyHandler{forwarder: forwarder}
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := domain.ProxyRequestFromQuery(r.URL.Query())
	label := metrics.EndpointLabel(req.Endpoint)
	defer func() {
		metrics.ProxyDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	}()

	body, err := h.forwarder.Forward(r.Context(), req)
	if err != nil {
		status := domain.StatusOf(err)
		metrics.ProxyRequests.WithLabelValues(label, outcome(err)).Inc()
		slog.Debug("Proxy request failed", "endpoint", req.Endpoint, "status_code", status, "error", err)
		writeJSON(w, status, errorBody{Message: domain.PublicMessage(err)})
		return
	}

	metrics.ProxyRequests.WithLabelValues(label, metrics.OutcomeSuccess).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Warn("Failed to write proxy response", "error", err)
	}
}

func outcome(err error) string {
	switch {
	case domain.IsConfiguration(err):
		return metrics.OutcomeConfiguration
	case domain.IsUpstream(err):
		return metrics.OutcomeUpstream
	default:
		return metrics.OutcomeExecution
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}
