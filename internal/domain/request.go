package domain

import (
	"net/url"
	"strings"
)

const (
	EndpointTopHeadlines = "top-headlines"
	EndpointEverything   = "everything"
)

// DefaultCategory is what browsing falls back to once a search is cleared.
const DefaultCategory = "general"

// ProxyRequest is the whitelisted parameter set the proxy forwards upstream.
type ProxyRequest struct {
	Endpoint string
	Q        string
	Category string
}

// NewProxyRequest derives the request mode strictly from whether a search
// term is present: a term always wins over the category.
func NewProxyRequest(searchTerm, category string) ProxyRequest {
	if searchTerm != "" {
		return ProxyRequest{Endpoint: EndpointEverything, Q: searchTerm}
	}
	return ProxyRequest{Endpoint: EndpointTopHeadlines, Category: category}
}

// ProxyRequestFromQuery reads the proxy's inbound query parameters.
// Anything outside endpoint, q and category is ignored.
func ProxyRequestFromQuery(values url.Values) ProxyRequest {
	return ProxyRequest{
		Endpoint: values.Get("endpoint"),
		Q:        values.Get("q"),
		Category: values.Get("category"),
	}
}

// Encode serializes the request for the client → proxy hop in the fixed
// order endpoint, q, category.
func (r ProxyRequest) Encode() string {
	parts := []string{"endpoint=" + url.QueryEscape(r.Endpoint)}
	switch r.Endpoint {
	case EndpointEverything:
		parts = append(parts, "q="+url.QueryEscape(r.Q))
	case EndpointTopHeadlines:
		parts = append(parts, "category="+url.QueryEscape(r.Category))
	}
	return strings.Join(parts, "&")
}
