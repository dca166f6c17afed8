// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// Bar displays the index state and keybinding hints.
type Bar struct {
	styles      *render.Styles
	keymap      *keymap.KeyMap
	state       domain.LoadState
	articles    int
	resultCount int
	notice      string
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *render.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = render.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  domain.NotLoaded,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return left + strings.Repeat(" ", padding) + right
}

// renderLeft renders the index state, followed by any notice.
func (s *Bar) renderLeft() string {
	left := s.renderState()
	if s.notice != "" {
		left += s.styles.Muted.Render(" · ") + s.notice
	}
	return left
}

func (s *Bar) renderState() string {
	switch s.state {
	case domain.Loading:
		return s.styles.Muted.Render("Loading index...")
	case domain.Loaded:
		return s.styles.Muted.Render(fmt.Sprintf("%d articles", s.articles))
	case domain.NotLoaded:
		return s.styles.Muted.Render("Index not loaded")
	}
	return ""
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " · "))
}

// SetIndex records the index state and size.
func (s *Bar) SetIndex(state domain.LoadState, articles int) {
	s.state = state
	s.articles = articles
}

// State returns the displayed load state.
func (s *Bar) State() domain.LoadState {
	return s.state
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetNotice shows a transient message next to the index state.
// An empty notice clears it.
func (s *Bar) SetNotice(notice string) {
	s.notice = notice
}

// Notice returns the current notice.
func (s *Bar) Notice() string {
	return s.notice
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
