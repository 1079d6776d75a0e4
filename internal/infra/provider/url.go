package provider

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/NewsReader/internal/domain"
)

var apiKeyParam = regexp.MustCompile(`apiKey=[^&\s"]*`)

// BuildUpstreamURL turns a whitelisted proxy request into the upstream URL:
//
//	{base}/v2/{endpoint}?apiKey={key}[&country={country}&category={category} | &q={q}]
//
// top-headlines always carries country and category, even when the category
// is empty. everything carries q only when it is non-empty. Any other
// endpoint gets no extra parameters; the upstream decides what to do with it.
func BuildUpstreamURL(baseURL, country, apiKey string, req domain.ProxyRequest) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/v2/")
	b.WriteString(url.PathEscape(req.Endpoint))
	b.WriteString("?apiKey=")
	b.WriteString(url.QueryEscape(apiKey))

	switch {
	case req.Endpoint == domain.EndpointTopHeadlines:
		b.WriteString("&country=")
		b.WriteString(url.QueryEscape(country))
		b.WriteString("&category=")
		b.WriteString(url.QueryEscape(req.Category))
	case req.Endpoint == domain.EndpointEverything && req.Q != "":
		b.WriteString("&q=")
		b.WriteString(url.QueryEscape(req.Q))
	}
	return b.String()
}

// RedactAPIKey masks the credential in anything that may end up in a log.
func RedactAPIKey(s string) string {
	return apiKeyParam.ReplaceAllString(s, "apiKey=REDACTED")
}
