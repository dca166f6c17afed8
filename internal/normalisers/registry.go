package normalisers

import (
	"context"
	"fmt"
	"mime"
	"slices"
	"sync"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry selects a normaliser for each raw index.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, normaliser)
}

// Names returns the registered normaliser names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.normalisers))
	for _, n := range r.normalisers {
		names = append(names, n.Name())
	}
	return names
}

// Normalise decodes raw with the best matching normaliser.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawIndex) ([]domain.Article, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.Select(raw)
	if n == nil {
		return nil, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedType, raw.URI, raw.MIMEType)
	}

	logger.Debug("Normalising %s as %s", raw.URI, n.Name())
	return n.Normalise(ctx, raw)
}

// Select returns the normaliser for raw, or nil if none applies.
// A normaliser that recognises the content beats one that only claims
// the MIME type.
func (r *Registry) Select(raw *domain.RawIndex) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n := best(r.normalisers, func(n driven.Normaliser) bool {
		return n.Sniff(raw.Content)
	}); n != nil {
		return n
	}

	mimeType := baseMIMEType(raw.MIMEType)
	if mimeType == "" {
		return nil
	}
	return best(r.normalisers, func(n driven.Normaliser) bool {
		return slices.Contains(n.SupportedMIMETypes(), mimeType)
	})
}

// best returns the highest priority normaliser accepted by match.
// Ties go to the earliest registered.
func best(normalisers []driven.Normaliser, match func(driven.Normaliser) bool) driven.Normaliser {
	var chosen driven.Normaliser
	for _, n := range normalisers {
		if !match(n) {
			continue
		}
		if chosen == nil || n.Priority() > chosen.Priority() {
			chosen = n
		}
	}
	return chosen
}

// baseMIMEType drops parameters such as charset.
func baseMIMEType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}
