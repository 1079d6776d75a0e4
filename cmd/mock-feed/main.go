package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	addr := ":8081"
	if v := os.Getenv("MOCK_FEED_ADDR"); v != "" {
		addr = v
	}

	slog.Info("Mock NewsAPI running", "address", addr)
	if err := http.ListenAndServe(addr, newMux()); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/top-headlines", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		category := r.URL.Query().Get("category")
		if category == "" {
			category = "general"
		}
		writeArticles(w, category+" headline")
	})
	mux.HandleFunc("/v2/everything", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"status":  "error",
				"code":    "parametersMissing",
				"message": "Required parameters are missing. Please set any of the following parameters and try again: q, qInTitle, sources, domains.",
			})
			return
		}
		writeArticles(w, "Result for "+q)
	})
	return mux
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("apiKey") != "" {
		return true
	}
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"status":  "error",
		"code":    "apiKeyMissing",
		"message": "Your API key is missing. Append this to the URL with the apiKey param, or use the x-api-key HTTP header.",
	})
	return false
}

func writeArticles(w http.ResponseWriter, title string) {
	now := time.Now().UTC()
	articles := []map[string]any{
		{
			"source":      map[string]any{"id": "mock-wire", "name": "Mock Wire"},
			"author":      "Mock Desk",
			"title":       title + " 1",
			"description": "A mock article served by the local feed.",
			"url":         "https://example.com/mock/1",
			"urlToImage":  "https://example.com/mock/1.jpg",
			"publishedAt": now.Format(time.RFC3339),
			"content":     "Mock content.",
		},
		{
			"source":      map[string]any{"id": nil, "name": ""},
			"title":       title + " 2",
			"url":         "https://example.com/mock/2",
			"publishedAt": now.Add(-1 * time.Hour).Format(time.RFC3339),
		},
		{
			"source":      map[string]any{"id": nil, "name": "[Removed]"},
			"title":       "[Removed]",
			"url":         "https://removed.com",
			"publishedAt": "1970-01-01T00:00:00Z",
		},
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"totalResults": len(articles),
		"articles":     articles,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
