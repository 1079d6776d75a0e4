package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/infra/metrics"
	"github.com/NewsReader/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ProxyService holds the credential-side half of the proxy: it checks the
// credential, calls the upstream once and classifies the outcome.
type ProxyService struct {
	upstream domain.Upstream
	apiKey   func() string
	sampler  *logging.ErrorSampler
}

// NewProxyService wires the service. apiKey is consulted on every request.
func NewProxyService(upstream domain.Upstream, apiKey func() string, sampler *logging.ErrorSampler) *ProxyService {
	return &ProxyService{
		upstream: upstream,
		apiKey:   apiKey,
		sampler:  sampler,
	}
}

// Forward returns the upstream body to relay verbatim, or one of
// ConfigurationError, UpstreamError or ProxyExecutionError.
func (s *ProxyService) Forward(ctx context.Context, req domain.ProxyRequest) ([]byte, error) {
	ctx, span := otel.Tracer("news-proxy").Start(ctx, "ProxyService.Forward")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", req.Endpoint))

	apiKey := s.apiKey()
	if apiKey == "" {
		slog.Error("API key not configured, refusing to call upstream")
		span.SetStatus(codes.Error, "api key not configured")
		return nil, &domain.ConfigurationError{}
	}

	samplerKey := "upstream_execution:" + metrics.EndpointLabel(req.Endpoint)

	resp, err := s.upstream.Get(ctx, apiKey, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream execution failed")
		s.sampler.Error(samplerKey, "Upstream request failed", "endpoint", req.Endpoint, "error", err)
		if !domain.IsProxyExecution(err) {
			err = &domain.ProxyExecutionError{Cause: err}
		}
		return nil, err
	}
	s.sampler.Reset(samplerKey)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamMessage(resp.Body)
		slog.Warn("Upstream returned error", "endpoint", req.Endpoint, "status_code", resp.StatusCode, "message", msg)
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	if !json.Valid(resp.Body) {
		err := &domain.ProxyExecutionError{Cause: errors.New("upstream returned a non-JSON body")}
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid upstream body")
		slog.Error("Upstream response unparseable", "endpoint", req.Endpoint, "bytes", len(resp.Body))
		return nil, err
	}

	return resp.Body, nil
}

// upstreamMessage pulls "message" out of an upstream error body, falling back
// to a generic text when the body has none or is not JSON.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return domain.MsgUpstreamFallback
	}
	return payload.Message
}
