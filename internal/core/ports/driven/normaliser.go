package driven

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// Normaliser decodes a raw index document into articles.
// Each normaliser handles one index layout (search.xml, search.json, feeds).
type Normaliser interface {
	// Name identifies the layout, e.g. "searchxml".
	Name() string

	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Sniff reports whether content looks like this normaliser's layout.
	Sniff(content []byte) bool

	// Priority returns the selection priority (higher = preferred).
	Priority() int

	// Normalise decodes the document. Markup in content fields is stripped
	// and URLs are trimmed. Missing fields default to the empty string.
	Normalise(ctx context.Context, raw *domain.RawIndex) ([]domain.Article, error)
}
