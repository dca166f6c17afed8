package connectors

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.Connector = (*Registry)(nil)

// Registry routes each URI to the connector registered for its scheme.
// URIs without a scheme are routed to the "file" connector.
type Registry struct {
	mu         sync.RWMutex
	connectors map[string]driven.Connector
}

// NewRegistry creates a registry holding the given connectors.
func NewRegistry(connectors ...driven.Connector) *Registry {
	r := &Registry{connectors: make(map[string]driven.Connector)}
	for _, c := range connectors {
		r.Register(c)
	}
	return r
}

// Register adds c under every scheme it serves. A later registration
// for the same scheme replaces the earlier one.
func (r *Registry) Register(c driven.Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, scheme := range c.Schemes() {
		r.connectors[strings.ToLower(scheme)] = c
	}
}

// Schemes returns every registered scheme.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schemes := make([]string, 0, len(r.connectors))
	for s := range r.connectors {
		schemes = append(schemes, s)
	}
	return schemes
}

// Fetch resolves the connector for uri and fetches through it.
func (r *Registry) Fetch(ctx context.Context, uri string) (*domain.RawIndex, error) {
	c, err := r.Resolve(uri)
	if err != nil {
		return nil, err
	}
	return c.Fetch(ctx, uri)
}

// Resolve returns the connector that serves uri.
func (r *Registry) Resolve(uri string) (driven.Connector, error) {
	scheme := Scheme(uri)

	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.connectors[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: no connector for scheme %q", domain.ErrUnsupportedType, scheme)
	}
	return c, nil
}

// Scheme returns the lower-cased URI scheme, or "file" for plain paths.
// Single letter schemes are Windows drive letters and count as paths.
func Scheme(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || len(u.Scheme) < 2 {
		return "file"
	}
	return strings.ToLower(u.Scheme)
}
