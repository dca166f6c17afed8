package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(render.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, domain.NotLoaded, bar.State())
	assert.Equal(t, 0, bar.ResultCount())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.LoadState
		articles int
		want     string
	}{
		{"not loaded", domain.NotLoaded, 0, "Index not loaded"},
		{"loading", domain.Loading, 0, "Loading index..."},
		{"loaded", domain.Loaded, 12, "12 articles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetIndex(tt.state, tt.articles)
			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestStatusBar_Hints(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "esc close")
	assert.NotContains(t, bar.View(), "enter open")

	bar.SetResultCount(3)
	assert.Equal(t, 3, bar.ResultCount())
	assert.Contains(t, bar.View(), "enter open")
}

func TestStatusBar_Width(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	assert.Equal(t, 120, len([]rune(bar.View())))
}

func TestStatusBar_Notice(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetIndex(domain.Loaded, 2)
	bar.SetNotice("Copied /a")

	assert.Equal(t, "Copied /a", bar.Notice())
	assert.Contains(t, bar.View(), "2 articles · Copied /a")

	bar.SetNotice("")
	assert.NotContains(t, bar.View(), "Copied")
}
