package driven

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// NormaliserRegistry selects the appropriate normaliser for a document.
// Content sniffing wins over the declared MIME type, since servers often
// label every XML layout as application/xml.
type NormaliserRegistry interface {
	// Normalise decodes a raw document using the best matching normaliser.
	Normalise(ctx context.Context, raw *domain.RawIndex) ([]domain.Article, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)
}
