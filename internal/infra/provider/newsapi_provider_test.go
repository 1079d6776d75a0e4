package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/NewsReader/internal/domain"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsAPIProvider_Get_RelaysStatusAndBody(t *testing.T) {
	var gotQuery string
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":"error","message":"rate limit exceeded"}`))
	}))
	defer server.Close()

	p := NewNewsAPIProvider(server.URL, "us", 0, 0)
	resp, err := p.Get(context.Background(), "key", domain.ProxyRequest{Endpoint: "top-headlines", Category: "science"})

	require.NoError(t, err, "non-2xx answers are relayed, not failed")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"status":"error","message":"rate limit exceeded"}`, string(resp.Body))
	assert.Equal(t, "apiKey=key&country=us&category=science", gotQuery)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retries")
}

func TestNewsAPIProvider_Get_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := NewNewsAPIProvider(url, "us", 0, 0)
	_, err := p.Get(context.Background(), "s3cr3t", domain.ProxyRequest{Endpoint: "everything", Q: "go"})

	require.Error(t, err)
	assert.True(t, domain.IsProxyExecution(err))
	assert.NotContains(t, err.Error(), "s3cr3t")
}

func TestNewsAPIProvider_BreakerDisabledByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := NewNewsAPIProvider(url, "us", 0, 0)
	for i := 0; i < 10; i++ {
		_, _ = p.Get(context.Background(), "k", domain.ProxyRequest{Endpoint: "everything"})
	}
	assert.Equal(t, gobreaker.StateClosed, p.cb.State())
}

func TestNewsAPIProvider_BreakerOpensOnTransportFailuresOnly(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			// Hijack and drop the connection to simulate a network failure.
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				_ = conn.Close()
			}
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"apiKeyInvalid"}`))
	}))
	defer server.Close()

	p := NewNewsAPIProvider(server.URL, "us", 0, 2)
	req := domain.ProxyRequest{Endpoint: "top-headlines"}

	for i := 0; i < 3; i++ {
		resp, err := p.Get(context.Background(), "k", req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	assert.Equal(t, gobreaker.StateClosed, p.cb.State(), "upstream 4xx does not count as a failure")

	fail.Store(true)
	for i := 0; i < 2; i++ {
		_, err := p.Get(context.Background(), "k", req)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, p.cb.State())

	fail.Store(false)
	_, err := p.Get(context.Background(), "k", req)
	require.Error(t, err, "open breaker fails fast")
	assert.True(t, domain.IsProxyExecution(err))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
