package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NewsReader/pkg/config"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Readiness reports whether the proxy can currently serve requests.
type Readiness interface {
	Check(ctx context.Context) error
}

// NewRouter exposes the proxy on cfg.ProxyPath (GET only) next to the
// health, readiness and metrics endpoints.
func NewRouter(cfg *config.Config, proxy *ProxyHandler, ready Readiness) http.Handler {
	r := mux.NewRouter()
	r.Use(accessLog)

	r.Handle(cfg.ProxyPath, proxy).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, "OK"); err != nil {
			slog.Debug("Failed to write health response", "error", err)
		}
	}).Methods(http.MethodGet)
	r.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := ready.Check(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(r)
}

func NewHTTPServer(cfg *config.Config, proxy *ProxyHandler, ready Readiness) *http.Server {
	return &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: NewRouter(cfg, proxy, ready),
	}
}
