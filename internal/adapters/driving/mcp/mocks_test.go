package mcp

import (
	"context"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response  domain.SearchResponse
	stats     domain.IndexStats
	lastQuery string
}

func (m *mockSearchService) Load(_ context.Context) domain.LoadState {
	return m.stats.State
}

func (m *mockSearchService) Search(_ context.Context, query string) domain.SearchResponse {
	m.lastQuery = query
	resp := m.response
	resp.Query = query
	return resp
}

func (m *mockSearchService) Stats() domain.IndexStats {
	return m.stats
}

func matchedResponse() domain.SearchResponse {
	return domain.SearchResponse{
		Status: domain.StatusMatched,
		Results: []domain.MatchResult{
			{
				Title:             "Cats <3",
				Snippet:           "this is a test about cats and dogs",
				URL:               "/a",
				TitleHighlights:   []domain.Span{{Start: 0, End: 3}},
				SnippetHighlights: []domain.Span{{Start: 21, End: 24}},
			},
			{
				Title:             "More cats",
				Snippet:           "cat",
				URL:               "/b",
				TitleHighlights:   []domain.Span{{Start: 5, End: 8}},
				SnippetHighlights: []domain.Span{{Start: 0, End: 3}},
			},
		},
	}
}
