package driven

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// IndexSource produces the full article list of one index.
// Implementations must return articles in source order and must not
// retain or mutate the returned slice.
type IndexSource interface {
	// URI returns the configured location of the index.
	URI() string

	// Articles fetches and decodes the index.
	Articles(ctx context.Context) ([]domain.Article, error)
}
