package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/infra/metrics"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// NewsAPIProvider issues the single upstream GET for a proxy request.
// It never retries. The breaker only counts transport failures; any HTTP
// answer, including 4xx/5xx, is a successful call that gets relayed.
type NewsAPIProvider struct {
	baseURL string
	country string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

// NewNewsAPIProvider builds the provider. A timeout of 0 leaves the
// transport defaults in place; a failureThreshold of 0 keeps the breaker
// closed forever.
func NewNewsAPIProvider(baseURL, country string, timeout time.Duration, failureThreshold int) *NewsAPIProvider {
	cbSettings := gobreaker.Settings{
		Name:        "newsapi",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return failureThreshold > 0 && counts.ConsecutiveFailures >= uint32(failureThreshold)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("CircuitBreaker state changed", "name", name, "from", from, "to", to)
		},
	}

	return &NewsAPIProvider{
		baseURL: baseURL,
		country: country,
		client: &http.Client{
			Timeout: timeout,
		},
		cb: gobreaker.NewCircuitBreaker(cbSettings),
	}
}

func (p *NewsAPIProvider) Get(ctx context.Context, apiKey string, req domain.ProxyRequest) (*domain.UpstreamResponse, error) {
	ctx, span := otel.Tracer("news-proxy").Start(ctx, "newsapi.Get", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", req.Endpoint))

	target := BuildUpstreamURL(p.baseURL, p.country, apiKey, req)
	start := time.Now()

	result, err := p.cb.Execute(func() (interface{}, error) {
		httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", redact(reqErr))
		}
		httpReq.Header.Set("Accept", "application/json")

		resp, respErr := p.client.Do(httpReq)
		if respErr != nil {
			return nil, redact(respErr)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				slog.Warn("Failed to close response body", "error", err)
			}
		}()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read upstream body: %w", readErr)
		}
		return &domain.UpstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
	})

	label := metrics.EndpointLabel(req.Endpoint)
	metrics.UpstreamDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream call failed")
		metrics.UpstreamResponses.WithLabelValues(label, "error").Inc()
		return nil, &domain.ProxyExecutionError{Cause: err}
	}

	resp := result.(*domain.UpstreamResponse)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	metrics.UpstreamResponses.WithLabelValues(label, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// redact strips the credential from *url.Error, which embeds the full URL.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: RedactAPIKey(urlErr.URL), Err: urlErr.Err}
	}
	return err
}
