// Package httpapi serves the search engine as a small JSON API for page
// scripts that cannot load the index themselves.
//
//	GET /api/search?q=cat   rendered results, highlights as <mark> HTML
//	GET /api/stats          session state and corpus size
//	GET /healthz            liveness
//
// The active session can be replaced while serving; requests in flight
// keep the session they started with.
package httpapi
