package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/NewsReader/cmd/server/factory"
	transport "github.com/NewsReader/internal/transport/http"
	"github.com/NewsReader/pkg/config"
	"go.uber.org/fx"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	fx.New(
		fx.Supply(cfg),
		fx.Provide(
			// Infrastructure
			factory.NewErrorSampler,

			// Providers
			factory.NewUpstreamProvider,

			// Services
			fx.Annotate(
				factory.NewProxyService,
				fx.As(new(transport.Forwarder)),
			),
			fx.Annotate(
				factory.NewReadinessChecker,
				fx.As(new(transport.Readiness)),
			),

			// HTTP Server
			transport.NewProxyHandler,
			transport.NewHTTPServer,
		),
		fx.Invoke(
			factory.NewTracerShutdown,
			StartServer,
		),
	).Run()
}

// --- Invokers ---

func StartServer(lc fx.Lifecycle, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting news proxy", "address", server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
