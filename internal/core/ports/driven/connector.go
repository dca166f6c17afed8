package driven

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// Connector fetches a raw index document.
// Each connector serves one or more URI schemes (https, file, github).
type Connector interface {
	// Schemes returns the URI schemes this connector serves.
	// The empty string stands for a bare filesystem path.
	Schemes() []string

	// Fetch retrieves the document at uri.
	Fetch(ctx context.Context, uri string) (*domain.RawIndex, error)
}
