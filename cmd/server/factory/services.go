package factory

import (
	"errors"
	"log/slog"

	"github.com/NewsReader/internal/app"
	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/pkg/config"
	"github.com/NewsReader/pkg/logging"
)

// NewProxyService creates the proxy service. The credential is looked up per
// request; a missing key is only logged here.
func NewProxyService(upstream domain.Upstream, sampler *logging.ErrorSampler) (*app.ProxyService, error) {
	if upstream == nil {
		return nil, errors.New("upstream is nil")
	}
	if config.APIKey() == "" {
		slog.Warn("Upstream API key not set; requests will fail until it is configured", "env", config.APIKeyEnv)
	}
	return app.NewProxyService(upstream, config.APIKey, sampler), nil
}

// NewReadinessChecker creates the /ready probe backed by the same credential lookup.
func NewReadinessChecker() *app.ReadinessChecker {
	return app.NewReadinessChecker(config.APIKey)
}
