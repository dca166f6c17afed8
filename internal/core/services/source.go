package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
)

// Ensure DocumentSource implements the interface.
var _ driven.IndexSource = (*DocumentSource)(nil)

// DocumentSource is an index served as a single document: a connector
// fetches the bytes and the normaliser registry decodes them.
type DocumentSource struct {
	uri         string
	connector   driven.Connector
	normalisers driven.NormaliserRegistry
}

// NewDocumentSource creates a document-backed index source.
func NewDocumentSource(uri string, connector driven.Connector, normalisers driven.NormaliserRegistry) *DocumentSource {
	return &DocumentSource{
		uri:         uri,
		connector:   connector,
		normalisers: normalisers,
	}
}

// URI returns the document location.
func (s *DocumentSource) URI() string {
	return s.uri
}

// Articles fetches and decodes the document.
func (s *DocumentSource) Articles(ctx context.Context) ([]domain.Article, error) {
	raw, err := s.connector.Fetch(ctx, s.uri)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	articles, err := s.normalisers.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise: %w", err)
	}
	return articles, nil
}
