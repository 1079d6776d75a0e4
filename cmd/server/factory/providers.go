package factory

import (
	"errors"
	"log/slog"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/infra/provider"
	"github.com/NewsReader/pkg/config"
)

// NewUpstreamProvider creates the headlines API client.
func NewUpstreamProvider(cfg *config.Config) (domain.Upstream, error) {
	if cfg.UpstreamBaseURL == "" {
		return nil, errors.New("upstream base URL not configured")
	}
	if cfg.BreakerFailureThreshold < 0 {
		return nil, errors.New("breaker failure threshold must not be negative")
	}

	slog.Info("Registered upstream",
		"base_url", cfg.UpstreamBaseURL,
		"country", cfg.DefaultCountry,
		"timeout", cfg.UpstreamTimeout,
		"breaker_threshold", cfg.BreakerFailureThreshold,
	)
	return provider.NewNewsAPIProvider(
		cfg.UpstreamBaseURL,
		cfg.DefaultCountry,
		cfg.UpstreamTimeout,
		cfg.BreakerFailureThreshold,
	), nil
}
