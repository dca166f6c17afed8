// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// ResultList displays search results in a navigable list.
type ResultList struct {
	response domain.SearchResponse
	selected int
	renderer *render.Terminal
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *render.Styles) *ResultList {
	return &ResultList{
		renderer: render.NewTerminal(s, true),
		width:    80,
		height:   10,
	}
}

// View renders the result list: nothing for a blank query, the
// placeholder for no results, and the visible window of results otherwise.
func (r *ResultList) View() string {
	styles := r.renderer.Styles()

	switch r.response.Status {
	case domain.StatusEmptyQuery:
		return ""
	case domain.StatusNoResults:
		return styles.Muted.Render(render.NoResultsPlaceholder)
	}

	results := r.response.Results
	lines := make([]string, 0, len(results)+2)
	lines = append(lines, styles.Muted.Render(fmt.Sprintf("%d results", len(results))), "")

	// Each result takes three lines plus a gap
	visibleCount := r.height / 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(results) {
		end = len(results)
	}

	for i := start; i < end; i++ {
		item := r.renderer.Item(truncated(results[i], r.width-4))
		if i == r.selected {
			item = styles.Selected.Render(item)
		} else {
			item = "  " + strings.ReplaceAll(item, "\n", "\n  ")
		}
		lines = append(lines, item)
	}

	return strings.Join(lines, "\n")
}

// truncated shortens the URL line so a result never wraps; title and
// snippet spans stay valid because only the URL is cut.
func truncated(r domain.MatchResult, width int) domain.MatchResult {
	if width < 10 {
		width = 10
	}
	if runes := []rune(r.URL); len(runes) > width {
		r.URL = string(runes[:width-3]) + "..."
	}
	return r
}

// SetResponse replaces the displayed response and resets the selection.
func (r *ResultList) SetResponse(resp domain.SearchResponse) {
	r.response = resp
	r.selected = 0
}

// Response returns the displayed response.
func (r *ResultList) Response() domain.SearchResponse {
	return r.response
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.MatchResult {
	results := r.response.Results
	if len(results) == 0 || r.selected < 0 || r.selected >= len(results) {
		return nil
	}
	return &results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.response.Results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.response.Results)
}
