package app

import (
	"context"
	"errors"
	"log/slog"
)

var ErrAPIKeyMissing = errors.New("upstream API key not configured")

// ReadinessChecker reports whether the proxy can serve requests. The
// credential is re-read on every check, like on every proxied request.
type ReadinessChecker struct {
	apiKey func() string
}

func NewReadinessChecker(apiKey func() string) *ReadinessChecker {
	return &ReadinessChecker{apiKey: apiKey}
}

func (c *ReadinessChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.apiKey() == "" {
		slog.Debug("Readiness check failed", "error", ErrAPIKeyMissing)
		return ErrAPIKeyMissing
	}
	return nil
}
