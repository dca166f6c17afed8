package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"literal text to find in article titles and content, case-insensitive"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default all)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Status      string               `json:"status"`
	Placeholder string               `json:"placeholder,omitempty"`
	Results     []SearchResultOutput `json:"results"`
	Count       int                  `json:"count"`
	Total       int                  `json:"total"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	TitleHTML   string `json:"title_html"`
	SnippetHTML string `json:"snippet_html"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the blog's articles for a literal phrase",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	resp := s.ports.Search.Search(ctx, input.Query)

	results := resp.Results
	if input.Limit > 0 && len(results) > input.Limit {
		results = results[:input.Limit]
	}

	output := SearchOutput{
		Status:      resp.Status.String(),
		Placeholder: render.Placeholder(resp.Status),
		Results:     make([]SearchResultOutput, len(results)),
		Count:       len(results),
		Total:       len(resp.Results),
	}

	for i := range results {
		item := render.HTML(results[i])
		output.Results[i] = SearchResultOutput{
			Title:       results[i].Title,
			Snippet:     results[i].Snippet,
			URL:         results[i].URL,
			TitleHTML:   item.TitleHTML,
			SnippetHTML: item.SnippetHTML,
		}
	}

	return nil, output, nil
}
