package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// Terminal renders responses for a terminal. With styling off it emits
// plain text suitable for pipes.
type Terminal struct {
	styles *Styles
	styled bool
}

// NewTerminal creates a terminal renderer. A nil styles uses the defaults.
func NewTerminal(styles *Styles, styled bool) *Terminal {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Terminal{styles: styles, styled: styled}
}

// Styles returns the styles in use.
func (t *Terminal) Styles() *Styles {
	return t.styles
}

// Render formats a whole response. An empty query renders as "".
func (t *Terminal) Render(resp domain.SearchResponse) string {
	switch resp.Status {
	case domain.StatusEmptyQuery:
		return ""
	case domain.StatusNoResults:
		return t.style(t.styles.Muted, NoResultsPlaceholder) + "\n"
	}

	var b strings.Builder
	for i, r := range resp.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Item(r))
		b.WriteString("\n")
	}
	return b.String()
}

// Item formats one result as title, snippet and URL lines.
func (t *Terminal) Item(r domain.MatchResult) string {
	lines := []string{
		t.Mark(r.Title, r.TitleHighlights, t.styles.Title),
		"  " + t.Mark(r.Snippet, r.SnippetHighlights, t.styles.Snippet),
	}
	if r.URL != "" {
		lines = append(lines, "  "+t.style(t.styles.URL, r.URL))
	}
	return strings.Join(lines, "\n")
}

// Mark styles text with base and its spans with the Mark style.
func (t *Terminal) Mark(text string, spans []domain.Span, base lipgloss.Style) string {
	if !t.styled {
		return text
	}
	return weave(text, spans,
		func(s string) string {
			if s == "" {
				return ""
			}
			return base.Render(s)
		},
		func(s string) string { return t.styles.Mark.Render(s) },
	)
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.styled {
		return text
	}
	return s.Render(text)
}
