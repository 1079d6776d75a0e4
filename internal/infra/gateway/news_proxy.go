package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NewsReader/internal/domain"
)

const (
	msgProxyUnreachable = "Could not reach the news proxy"
	msgInvalidResponse  = "Invalid response from the news proxy"
)

// NewsProxyGateway fetches articles through the server-side proxy. It never
// sees the upstream credential.
type NewsProxyGateway struct {
	proxyURL    string
	client      *http.Client
	transformer domain.Transformer
}

func NewNewsProxyGateway(proxyURL string, timeout time.Duration, transformer domain.Transformer) *NewsProxyGateway {
	return &NewsProxyGateway{
		proxyURL:    proxyURL,
		client:      &http.Client{Timeout: timeout},
		transformer: transformer,
	}
}

// URL is the proxy address used for req.
func (g *NewsProxyGateway) URL(req domain.ProxyRequest) string {
	sep := "?"
	if strings.Contains(g.proxyURL, "?") {
		sep = "&"
	}
	return g.proxyURL + sep + req.Encode()
}

// Fetch issues one GET to the proxy. Every failure comes back as a
// *domain.FetchError whose message can be shown as is.
func (g *NewsProxyGateway) Fetch(ctx context.Context, req domain.ProxyRequest) ([]domain.Article, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.URL(req), nil)
	if err != nil {
		slog.Error("Failed to build proxy request", "error", err)
		return nil, &domain.FetchError{Message: msgProxyUnreachable}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		slog.Warn("Proxy request failed", "endpoint", req.Endpoint, "error", err)
		return nil, &domain.FetchError{Message: msgProxyUnreachable}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	}

	articles, err := g.transformer.Transform(resp.Body)
	if err != nil {
		slog.Warn("Failed to parse proxy response", "endpoint", req.Endpoint, "error", err)
		return nil, &domain.FetchError{StatusCode: resp.StatusCode, Message: msgInvalidResponse}
	}
	return articles, nil
}

// errorMessage prefers the proxy's {"message": ...} body.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(data, &body) == nil && body.Message != "" {
		return body.Message
	}
	return domain.HTTPErrorMessage(resp.StatusCode)
}
