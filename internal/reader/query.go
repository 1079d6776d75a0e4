// Package reader holds the client-side view state of the news reader: which
// query is active, what the last fetch produced, and the transitions between
// them. Everything here is a value; transitions return new snapshots.
package reader

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/NewsReader/internal/domain"
)

type Mode int

const (
	Browsing Mode = iota
	Searching
)

// Category is one entry of the category filter.
type Category struct {
	Label string
	Slug  string
}

// Categories is the fixed filter row, in display order.
var Categories = []Category{
	{Label: "General", Slug: "general"},
	{Label: "Technology", Slug: "technology"},
	{Label: "Sports", Slug: "sports"},
	{Label: "Business", Slug: "business"},
	{Label: "Health", Slug: "health"},
	{Label: "Science", Slug: "science"},
	{Label: "Entertainment", Slug: "entertainment"},
}

// Query is what the user asked for. A non-empty SearchTerm puts the reader in
// search mode and Category is then ignored for requests.
type Query struct {
	SearchTerm string
	Category   string
}

func DefaultQuery() Query {
	return Query{Category: domain.DefaultCategory}
}

func (q Query) Mode() Mode {
	if q.SearchTerm != "" {
		return Searching
	}
	return Browsing
}

func (q Query) Request() domain.ProxyRequest {
	return domain.NewProxyRequest(q.SearchTerm, q.Category)
}

// HandleSearch enters search mode for a non-empty term. An empty term goes
// back to browsing the default category.
func HandleSearch(q Query, term string) Query {
	term = strings.TrimSpace(term)
	if term == "" {
		return DefaultQuery()
	}
	return Query{SearchTerm: term, Category: q.Category}
}

// HandleCategoryChange always drops the search term.
func HandleCategoryChange(_ Query, category string) Query {
	return Query{Category: category}
}

// Heading is the line shown above the results.
func (q Query) Heading() string {
	if q.Mode() == Searching {
		return fmt.Sprintf("Results for: %q", q.SearchTerm)
	}
	return fmt.Sprintf("Top %s Headlines", Capitalize(q.Category))
}

// Capitalize upper-cases the first letter and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
