package transformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsAPITransformer_Transform(t *testing.T) {
	body := `{
		"status": "ok",
		"totalResults": 2,
		"articles": [
			{
				"source": {"id": "bbc-news", "name": "BBC News"},
				"author": "Jane",
				"title": "Rover lands",
				"description": "It landed.",
				"url": "https://example.com/rover",
				"urlToImage": "https://example.com/rover.jpg",
				"publishedAt": "2024-03-05T10:00:00Z",
				"content": "Full text"
			},
			{"source": {"id": null, "name": ""}, "title": "[Removed]"}
		]
	}`

	articles, err := NewNewsAPITransformer().Transform(strings.NewReader(body))

	require.NoError(t, err)
	require.Len(t, articles, 2, "filtering is left to the view state")
	assert.Equal(t, "BBC News", articles[0].Source.Name)
	assert.Equal(t, "Rover lands", articles[0].Title)
	assert.Equal(t, "https://example.com/rover.jpg", articles[0].URLToImage)
	assert.Equal(t, "2024-03-05T10:00:00Z", articles[0].PublishedAt)
}

func TestNewsAPITransformer_EmptyArticles(t *testing.T) {
	articles, err := NewNewsAPITransformer().Transform(strings.NewReader(`{"status":"ok","totalResults":0,"articles":[]}`))

	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestNewsAPITransformer_MissingArticles(t *testing.T) {
	_, err := NewNewsAPITransformer().Transform(strings.NewReader(`{"status":"ok"}`))

	assert.ErrorIs(t, err, errNoArticles)
}

func TestNewsAPITransformer_InvalidJSON(t *testing.T) {
	_, err := NewNewsAPITransformer().Transform(strings.NewReader(`<html>`))

	assert.ErrorContains(t, err, "failed to decode news response")
}

func TestGetTransformer(t *testing.T) {
	tr, err := GetTransformer(NewsAPIName)
	require.NoError(t, err)
	assert.IsType(t, &NewsAPITransformer{}, tr)

	_, err = GetTransformer("pulselive")
	assert.Error(t, err)
}
