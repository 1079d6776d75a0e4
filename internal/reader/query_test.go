package reader

import (
	"testing"

	"github.com/NewsReader/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHandleSearch(t *testing.T) {
	tests := []struct {
		name  string
		start Query
		term  string
		want  Query
	}{
		{
			name:  "term enters search mode",
			start: Query{Category: "sports"},
			term:  "electric cars",
			want:  Query{SearchTerm: "electric cars", Category: "sports"},
		},
		{
			name:  "term is trimmed",
			start: DefaultQuery(),
			term:  "  mars  ",
			want:  Query{SearchTerm: "mars", Category: "general"},
		},
		{
			name:  "empty term resets to general",
			start: Query{SearchTerm: "mars", Category: "science"},
			term:  "",
			want:  Query{Category: "general"},
		},
		{
			name:  "blank term resets to general",
			start: Query{Category: "health"},
			term:  "   ",
			want:  Query{Category: "general"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleSearch(tt.start, tt.term))
		})
	}
}

func TestHandleCategoryChange_ClearsSearch(t *testing.T) {
	got := HandleCategoryChange(Query{SearchTerm: "mars", Category: "general"}, "technology")

	assert.Equal(t, Query{Category: "technology"}, got)
	assert.Equal(t, Browsing, got.Mode())
}

func TestQuery_Request(t *testing.T) {
	assert.Equal(t,
		domain.ProxyRequest{Endpoint: domain.EndpointTopHeadlines, Category: "technology"},
		Query{Category: "technology"}.Request())
	assert.Equal(t,
		domain.ProxyRequest{Endpoint: domain.EndpointEverything, Q: "electric cars"},
		Query{SearchTerm: "electric cars", Category: "technology"}.Request())
}

func TestQuery_Heading(t *testing.T) {
	assert.Equal(t, "Top General Headlines", DefaultQuery().Heading())
	assert.Equal(t, "Top Technology Headlines", Query{Category: "technology"}.Heading())
	assert.Equal(t, `Results for: "mars"`, Query{SearchTerm: "mars", Category: "science"}.Heading())
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Sports", Capitalize("sports"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Éclair", Capitalize("éclair"))
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 7)
	assert.Equal(t, domain.DefaultCategory, Categories[0].Slug)
}
