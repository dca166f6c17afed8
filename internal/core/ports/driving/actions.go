package driving

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by the TUI and CLI adapters.
type ResultActionService interface {
	// ResolveURL turns a result URL into an absolute, openable URL.
	ResolveURL(raw string) string

	// CopyURL copies the result's resolved URL to the system clipboard.
	CopyURL(ctx context.Context, result domain.MatchResult) error

	// OpenURL opens the result's resolved URL in the default browser.
	OpenURL(ctx context.Context, result domain.MatchResult) error
}
