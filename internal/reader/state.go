package reader

import (
	"fmt"

	"github.com/NewsReader/internal/domain"
)

const (
	LoadingText = "Loading news articles..."
	EmptyText   = "No articles found. Try a different search term or category."
)

// Ticket identifies one fetch. Only the completion carrying the latest ticket
// is applied to the state.
type Ticket struct {
	seq uint64
}

// State is an immutable snapshot of what the reader shows.
type State struct {
	Query    Query
	Articles []domain.Article
	Loading  bool
	Err      string

	seq uint64
}

// NewState is the state before the first fetch completes.
func NewState() State {
	return State{Query: DefaultQuery(), Loading: true}
}

func (s State) WithQuery(q Query) State {
	s.Query = q
	return s
}

// BeginFetch marks the state as loading and issues the ticket the matching
// completion must present. The previous error is cleared; articles are kept.
func (s State) BeginFetch() (State, Ticket) {
	s.seq++
	s.Loading = true
	s.Err = ""
	return s, Ticket{seq: s.seq}
}

// IsCurrent reports whether t belongs to the most recent fetch.
func (s State) IsCurrent(t Ticket) bool {
	return t.seq == s.seq
}

// CompleteFetch applies a fetch outcome. Completions for superseded tickets
// leave the state untouched. On failure the previous articles stay visible.
func (s State) CompleteFetch(t Ticket, articles []domain.Article, err error) State {
	if !s.IsCurrent(t) {
		return s
	}
	s.Loading = false
	if err != nil {
		s.Err = FetchErrorText(err)
		return s
	}
	s.Err = ""
	s.Articles = domain.FilterRemoved(articles)
	return s
}

func (s State) Heading() string {
	return s.Query.Heading()
}

// Empty is true when a fetch succeeded with nothing to show.
func (s State) Empty() bool {
	return !s.Loading && s.Err == "" && len(s.Articles) == 0
}

// FetchErrorText is the banner text for a failed fetch.
func FetchErrorText(err error) string {
	return fmt.Sprintf("Failed to fetch news: %s.", err.Error())
}
