package transformer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/NewsReader/internal/domain"
)

const NewsAPIName = "newsapi"

var errNoArticles = errors.New("response has no articles array")

// NewsAPITransformer decodes the upstream body the proxy relays.
type NewsAPITransformer struct{}

func NewNewsAPITransformer() *NewsAPITransformer {
	return &NewsAPITransformer{}
}

func (t *NewsAPITransformer) Transform(reader io.Reader) ([]domain.Article, error) {
	var resp domain.NewsResponse
	if err := json.NewDecoder(reader).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if resp.Articles == nil {
		return nil, errNoArticles
	}
	return *resp.Articles, nil
}
