// Package github fetches an index document stored in a GitHub repository,
// which suits blogs whose generated public/ tree is committed to a
// gh-pages style branch.
//
// Sources are addressed as
//
//	github://owner/repo/path/to/search.xml[@ref]
//
// Without a ref the repository's default branch is read. A configured
// token (github.token) is sent as a bearer token and raises the API quota
// from 60 to 5,000 requests per hour; public repositories work without one.
//
// Requests are throttled proactively with a token bucket and reactively
// from the X-RateLimit-* response headers.
package github
