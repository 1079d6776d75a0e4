package domain

import "io"

// Transformer decodes a proxy/upstream body into the articles the reader shows.
type Transformer interface {
	Transform(reader io.Reader) ([]Article, error)
}
