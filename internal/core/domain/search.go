package domain

// SearchStatus tells a UI which of the three display states applies.
type SearchStatus int

const (
	// StatusEmptyQuery means the query was blank and the display should be cleared.
	StatusEmptyQuery SearchStatus = iota

	// StatusNoResults means the query was non-blank but nothing matched.
	StatusNoResults

	// StatusMatched means at least one article matched.
	StatusMatched
)

// String returns the wire name of the status.
func (s SearchStatus) String() string {
	switch s {
	case StatusEmptyQuery:
		return "empty_query"
	case StatusNoResults:
		return "no_results"
	case StatusMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by its wire name.
func (s SearchStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Span marks one highlighted occurrence as byte offsets [Start, End).
type Span struct {
	Start int
	End   int
}

// MatchResult is one article that matched a query.
// Title and Snippet are plain text; the highlight spans index into them.
type MatchResult struct {
	// Title is the article title.
	Title string

	// Snippet is a bounded excerpt of the article content.
	Snippet string

	// URL is the article destination.
	URL string

	// TitleHighlights are the query occurrences within Title.
	TitleHighlights []Span

	// SnippetHighlights are the query occurrences within Snippet.
	SnippetHighlights []Span
}

// SearchResponse is the outcome of one query.
type SearchResponse struct {
	// Query is the text as typed.
	Query string

	// Status selects between clearing, the no-results placeholder and results.
	Status SearchStatus

	// Results holds matches in corpus order. Empty unless Status is StatusMatched.
	Results []MatchResult
}
