package driving

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// SearchService is one search session over one index.
type SearchService interface {
	// Load makes the index available, fetching it at most once per session.
	// Failures are logged, not returned; the resulting state tells the caller
	// whether a corpus is available.
	Load(ctx context.Context) domain.LoadState

	// Search loads the index if needed and runs query against it.
	Search(ctx context.Context, query string) domain.SearchResponse

	// Stats summarises the session.
	Stats() domain.IndexStats
}
