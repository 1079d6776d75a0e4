package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFeed_RequiresKey(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/top-headlines?country=us", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "apiKeyMissing")
}

func TestMockFeed_TopHeadlines(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/top-headlines?apiKey=k&country=us&category=sports", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Articles []struct {
			Title string `json:"title"`
		} `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Articles, 3)
	assert.Equal(t, "sports headline 1", body.Articles[0].Title)
	assert.Equal(t, "[Removed]", body.Articles[2].Title)
}

func TestMockFeed_EverythingNeedsQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/everything?apiKey=k", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
