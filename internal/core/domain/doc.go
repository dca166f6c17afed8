// Package domain defines the core entities for blogsearch.
//
// This package is the innermost layer of the hexagon. It holds the
// fundamental types shared by every other package:
//
//   - Article: One searchable record of the blog index
//   - Corpus: The immutable, ordered set of articles for a session
//   - MatchResult: A query hit with snippet and highlight spans
//   - RawIndex: Opaque bytes fetched by a connector
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
