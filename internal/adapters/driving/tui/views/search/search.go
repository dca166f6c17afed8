// Package search provides the search modal view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
)

// View is the search modal: a query box over a live result list.
// Every edit of the query runs a search; responses for queries that are
// no longer in the box are dropped.
type View struct {
	styles    *render.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	actions       driving.ResultActionService
	ctx           context.Context

	width  int
	height int
	ready  bool
}

// NewView creates a new search view.
func NewView(s *render.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = render.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithActions enables result actions such as copying the selected URL.
func (v *View) WithActions(actions driving.ResultActionService) *View {
	v.actions = actions
	return v
}

// Init starts the cursor blink and the index load.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadIndex())
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.IndexLoaded:
		v.statusbar.SetIndex(msg.State, msg.Articles)
		return v, nil

	case messages.SearchCompleted:
		if msg.Response.Query != v.input.Value() {
			return v, nil
		}
		v.list.SetResponse(msg.Response)
		v.statusbar.SetResultCount(len(msg.Response.Results))
		v.statusbar.SetNotice("")
		return v, v.refreshIndex()

	case messages.ActionCompleted:
		if msg.Err != nil {
			v.statusbar.SetNotice(v.styles.Error.Render(msg.Err.Error()))
		} else {
			v.statusbar.SetNotice(msg.Notice)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Close):
		v.Reset()
		return v, func() tea.Msg { return messages.Closed{} }

	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(key, v.keymap.Open):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		url := result.URL
		return v, func() tea.Msg { return messages.ResultChosen{URL: url} }

	case keymap.Matches(key, v.keymap.Copy):
		return v, v.copySelected()
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.performSearch(v.input.Value()))
}

// loadIndex triggers the session load so the first keystroke finds the
// corpus ready.
func (v *View) loadIndex() tea.Cmd {
	if v.searchService == nil {
		return nil
	}
	if stats := v.searchService.Stats(); stats.State != domain.Loaded {
		v.statusbar.SetIndex(domain.Loading, 0)
	}
	return func() tea.Msg {
		state := v.searchService.Load(v.ctx)
		return messages.IndexLoaded{State: state, Articles: v.searchService.Stats().Articles}
	}
}

// refreshIndex reports the index state after a search, which may have
// retried a failed load.
func (v *View) refreshIndex() tea.Cmd {
	if v.searchService == nil {
		return nil
	}
	return func() tea.Msg {
		stats := v.searchService.Stats()
		return messages.IndexLoaded{State: stats.State, Articles: stats.Articles}
	}
}

// performSearch runs query against the session.
func (v *View) performSearch(query string) tea.Cmd {
	if v.searchService == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.SearchCompleted{Response: v.searchService.Search(v.ctx, query)}
	}
}

// copySelected copies the selected result's URL through the action service.
func (v *View) copySelected() tea.Cmd {
	result := v.list.SelectedResult()
	if result == nil || v.actions == nil {
		return nil
	}
	chosen := *result
	return func() tea.Msg {
		if err := v.actions.CopyURL(v.ctx, chosen); err != nil {
			return messages.ActionCompleted{Err: err}
		}
		return messages.ActionCompleted{Notice: "Copied " + v.actions.ResolveURL(chosen.URL)}
	}
}

// View renders the search modal.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.input.View()}
	if results := v.list.View(); results != "" {
		sections = append(sections, "", results)
	}
	sections = append(sections, "", v.statusbar.View())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return v.styles.Modal.Width(v.innerWidth()).Render(body)
}

func (v *View) innerWidth() int {
	// Border and horizontal padding of the modal
	w := v.width - 6
	if w < 20 {
		w = 20
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	inner := v.innerWidth()
	v.input.SetWidth(inner)
	v.list.SetDimensions(inner, height-10) // Reserve space for input, status and borders
	v.statusbar.SetWidth(inner)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query and runs it.
func (v *View) SetQuery(query string) tea.Cmd {
	v.input.SetValue(query)
	return v.performSearch(query)
}

// List exposes the result list.
func (v *View) List() *list.ResultList {
	return v.list
}

// Reset clears the query and results.
func (v *View) Reset() {
	v.input.Reset()
	v.list.SetResponse(domain.SearchResponse{})
	v.statusbar.SetResultCount(0)
}
