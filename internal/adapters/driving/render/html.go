package render

import (
	"html"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// NoResultsPlaceholder is shown when a non-blank query matches nothing.
const NoResultsPlaceholder = "No matching articles found"

// Item is one result ready for insertion into a page.
type Item struct {
	TitleHTML   string `json:"title_html"`
	SnippetHTML string `json:"snippet_html"`
	URL         string `json:"url"`
}

// List is a rendered response. Consumers show Placeholder when it is set
// and Items otherwise; an empty query yields neither.
type List struct {
	Status      domain.SearchStatus `json:"status"`
	Placeholder string              `json:"placeholder"`
	Items       []Item              `json:"results"`
}

// MarkHTML escapes text and wraps each span in <mark></mark>.
func MarkHTML(text string, spans []domain.Span) string {
	return weave(text, spans, html.EscapeString, func(s string) string {
		return "<mark>" + html.EscapeString(s) + "</mark>"
	})
}

// HTML renders one result.
func HTML(r domain.MatchResult) Item {
	return Item{
		TitleHTML:   MarkHTML(r.Title, r.TitleHighlights),
		SnippetHTML: MarkHTML(r.Snippet, r.SnippetHighlights),
		URL:         r.URL,
	}
}

// HTMLList renders a whole response.
func HTMLList(resp domain.SearchResponse) List {
	items := make([]Item, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, HTML(r))
	}
	return List{
		Status:      resp.Status,
		Placeholder: Placeholder(resp.Status),
		Items:       items,
	}
}

// Placeholder returns the message for status, or "" when results (or
// nothing at all) should be shown.
func Placeholder(status domain.SearchStatus) string {
	if status == domain.StatusNoResults {
		return NoResultsPlaceholder
	}
	return ""
}
