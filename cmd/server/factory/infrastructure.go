// Package factory provides dependency injection constructors for infrastructure components.
package factory

import (
	"context"
	"log/slog"

	"github.com/NewsReader/internal/infra/tracing"
	"github.com/NewsReader/pkg/config"
	"github.com/NewsReader/pkg/logging"
	"go.uber.org/fx"
)

const serviceName = "news-proxy"

// NewErrorSampler creates the sampler used for repeated upstream failures.
func NewErrorSampler(cfg *config.Config) *logging.ErrorSampler {
	return logging.NewErrorSampler(cfg.ErrorLogSampleInterval)
}

// NewTracerShutdown installs the tracer provider and registers its shutdown.
func NewTracerShutdown(lc fx.Lifecycle, cfg *config.Config) error {
	shutdown, err := tracing.InitTracer(context.Background(), serviceName, cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}
