// Package mcp provides an MCP (Model Context Protocol) server adapter for
// blogsearch. It lets AI assistants search a blog's article index.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
