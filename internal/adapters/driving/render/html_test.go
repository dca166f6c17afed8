package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

func TestMarkHTML(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []domain.Span
		want  string
	}{
		{
			name: "no spans",
			text: "plain text",
			want: "plain text",
		},
		{
			name:  "one span",
			text:  "this is a test about cats and dogs",
			spans: []domain.Span{{Start: 21, End: 24}},
			want:  "this is a test about <mark>cat</mark>s and dogs",
		},
		{
			name:  "several spans keep their case",
			text:  "Go go GO",
			spans: []domain.Span{{Start: 0, End: 2}, {Start: 3, End: 5}, {Start: 6, End: 8}},
			want:  "<mark>Go</mark> <mark>go</mark> <mark>GO</mark>",
		},
		{
			name:  "markup in text is escaped",
			text:  `use <b> & "quotes"`,
			spans: []domain.Span{{Start: 4, End: 7}},
			want:  `use <mark>&lt;b&gt;</mark> &amp; &#34;quotes&#34;`,
		},
		{
			name:  "invalid spans are skipped",
			text:  "abcdef",
			spans: []domain.Span{{Start: 2, End: 4}, {Start: 3, End: 5}, {Start: 5, End: 99}, {Start: 4, End: 4}},
			want:  "ab<mark>cd</mark>ef",
		},
		{
			name: "empty text",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkHTML(tt.text, tt.spans))
		})
	}
}

func TestHTML(t *testing.T) {
	item := HTML(domain.MatchResult{
		Title:             "Cat <Care>",
		Snippet:           "feeding cats",
		URL:               "/c?x=1&y=2",
		TitleHighlights:   []domain.Span{{Start: 0, End: 3}},
		SnippetHighlights: []domain.Span{{Start: 8, End: 11}},
	})

	assert.Equal(t, "<mark>Cat</mark> &lt;Care&gt;", item.TitleHTML)
	assert.Equal(t, "feeding <mark>cat</mark>s", item.SnippetHTML)
	assert.Equal(t, "/c?x=1&y=2", item.URL)
}

func TestHTMLList(t *testing.T) {
	t.Run("empty query clears", func(t *testing.T) {
		list := HTMLList(domain.SearchResponse{Status: domain.StatusEmptyQuery, Results: []domain.MatchResult{}})

		assert.Equal(t, "", list.Placeholder)
		assert.NotNil(t, list.Items)
		assert.Empty(t, list.Items)
	})

	t.Run("no results shows placeholder", func(t *testing.T) {
		list := HTMLList(domain.SearchResponse{Query: "zebra", Status: domain.StatusNoResults})

		assert.Equal(t, NoResultsPlaceholder, list.Placeholder)
		assert.Empty(t, list.Items)
	})

	t.Run("matches render in order", func(t *testing.T) {
		list := HTMLList(domain.SearchResponse{
			Query:  "a",
			Status: domain.StatusMatched,
			Results: []domain.MatchResult{
				{Title: "first", URL: "/1"},
				{Title: "second", URL: "/2"},
			},
		})

		assert.Equal(t, "", list.Placeholder)
		require.Len(t, list.Items, 2)
		assert.Equal(t, "/1", list.Items[0].URL)
		assert.Equal(t, "/2", list.Items[1].URL)
	})
}

func TestHTMLList_JSON(t *testing.T) {
	list := HTMLList(domain.SearchResponse{
		Status:  domain.StatusMatched,
		Results: []domain.MatchResult{{Title: "t", Snippet: "s", URL: "/u"}},
	})

	data, err := json.Marshal(list)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "matched",
		"placeholder": "",
		"results": [{"title_html": "t", "snippet_html": "s", "url": "/u"}]
	}`, string(data))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "", Placeholder(domain.StatusEmptyQuery))
	assert.Equal(t, "No matching articles found", Placeholder(domain.StatusNoResults))
	assert.Equal(t, "", Placeholder(domain.StatusMatched))
}
