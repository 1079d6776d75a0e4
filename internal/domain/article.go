package domain

import (
	"context"
	"time"
)

// RemovedTitle is the title the upstream API gives to retracted articles.
const RemovedTitle = "[Removed]"

const (
	unknownSource      = "Unknown Source"
	missingDate        = "N/A"
	missingDescription = "Description not available. Click to read full article."
	placeholderImage   = "https://via.placeholder.com/600x400?text=Image+Not+Available"
)

// Article is one element of the upstream "articles" array. Fields the
// upstream leaves out stay empty.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage,omitempty"`
	PublishedAt string        `json:"publishedAt,omitempty"`
	Content     string        `json:"content,omitempty"`
}

type ArticleSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// NewsResponse is the upstream envelope. Articles is a pointer so a body
// without an "articles" key can be told apart from an empty result.
type NewsResponse struct {
	Status       string     `json:"status"`
	TotalResults int        `json:"totalResults,omitempty"`
	Articles     *[]Article `json:"articles,omitempty"`
	Code         string     `json:"code,omitempty"`
	Message      string     `json:"message,omitempty"`
}

// FilterRemoved drops retracted articles and keeps the rest in order.
func FilterRemoved(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Title == RemovedTitle {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (a Article) SourceName() string {
	if a.Source.Name == "" {
		return unknownSource
	}
	return a.Source.Name
}

func (a Article) DisplayDescription() string {
	if a.Description == "" {
		return missingDescription
	}
	return a.Description
}

func (a Article) ImageURL() string {
	if a.URLToImage == "" {
		return placeholderImage
	}
	return a.URLToImage
}

// DisplayDate renders PublishedAt as a local calendar date.
func (a Article) DisplayDate() string {
	if a.PublishedAt == "" {
		return missingDate
	}
	ts, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return missingDate
	}
	return ts.Local().Format("1/2/2006")
}

// Upstream performs the single outbound call to the headlines API.
type Upstream interface {
	Get(ctx context.Context, apiKey string, req ProxyRequest) (*UpstreamResponse, error)
}

// UpstreamResponse is the raw upstream answer, relayed verbatim on success.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// NewsGateway is the client's view of the proxy.
type NewsGateway interface {
	Fetch(ctx context.Context, req ProxyRequest) ([]Article, error)
}

// ThemeRepository persists the single theme preference.
type ThemeRepository interface {
	LoadTheme() (Theme, error)
	SaveTheme(theme Theme) error
}
