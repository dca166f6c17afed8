package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is one search session: it owns the loader for one index
// and runs queries against whatever corpus that loader has settled on.
// Independent sessions never share state.
type SearchService struct {
	id     string
	loader *IndexLoader
}

// NewSearchService creates a session over source.
func NewSearchService(source driven.IndexSource, opts ...LoaderOption) *SearchService {
	s := &SearchService{
		id:     uuid.NewString(),
		loader: NewIndexLoader(source, opts...),
	}
	logger.Debug("Session %s created for %s", s.id, source.URI())
	return s
}

// Load triggers the index load. Failures were already reported to the log
// sink by the loader; callers only see the resulting state.
func (s *SearchService) Load(ctx context.Context) domain.LoadState {
	if _, err := s.loader.Load(ctx); err != nil && !errors.Is(err, domain.ErrIndexLoad) {
		logger.Debug("Session %s: load not completed: %v", s.id, err)
	}
	return s.loader.State()
}

// Search runs query against the session corpus, loading it first if this
// is the first non-blank query. While no corpus is available every query
// reports StatusNoResults.
func (s *SearchService) Search(ctx context.Context, query string) domain.SearchResponse {
	logger.Debug("Session %s: query %q", s.id, query)

	if strings.TrimSpace(query) != "" {
		s.Load(ctx)
	}

	resp := Query(s.loader.Corpus(), query)
	logger.Debug("Session %s: %s, %d results", s.id, resp.Status, len(resp.Results))
	return resp
}

// Stats summarises the session.
func (s *SearchService) Stats() domain.IndexStats {
	return domain.IndexStats{
		SessionID: s.id,
		State:     s.State(),
		Articles:  s.loader.Corpus().Len(),
		SourceURI: s.loader.SourceURI(),
	}
}

// State returns the current load state without triggering a load.
func (s *SearchService) State() domain.LoadState {
	return s.loader.State()
}

// SessionID returns the session identifier used in logs.
func (s *SearchService) SessionID() string {
	return s.id
}
