package domain

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	MsgAPIKeyNotConfigured = "Internal Error: API Key not configured in server environment."
	MsgExecutionFailed     = "Internal proxy execution failed."
	MsgUpstreamFallback    = "NewsAPI error"
)

// ConfigurationError means the server holds no upstream credential.
type ConfigurationError struct{}

func (e *ConfigurationError) Error() string {
	return "API key not configured"
}

// UpstreamError is a non-2xx answer from the headlines API.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// ProxyExecutionError wraps a network or parse failure reaching the upstream.
// Cause is for server-side logs only.
type ProxyExecutionError struct {
	Cause error
}

func (e *ProxyExecutionError) Error() string {
	return fmt.Sprintf("proxy execution failed: %v", e.Cause)
}

func (e *ProxyExecutionError) Unwrap() error {
	return e.Cause
}

// FetchError is the client-side failure of one fetch. Message is already
// safe to show to the user.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// HTTPErrorMessage is used when a failed proxy response carries no message.
func HTTPErrorMessage(status int) string {
	return fmt.Sprintf("HTTP error! Status: %d", status)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

func IsProxyExecution(err error) bool {
	var target *ProxyExecutionError
	return errors.As(err, &target)
}

// StatusOf maps a proxy error to the HTTP status relayed to the client.
func StatusOf(err error) int {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage maps a proxy error to the message the client may see.
// Causes of execution failures never leave the server.
func PublicMessage(err error) string {
	var upstreamErr *UpstreamError
	switch {
	case IsConfiguration(err):
		return MsgAPIKeyNotConfigured
	case errors.As(err, &upstreamErr):
		if upstreamErr.Message == "" {
			return MsgUpstreamFallback
		}
		return upstreamErr.Message
	default:
		return MsgExecutionFailed
	}
}
