package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []domain.Span
	}{
		{"empty query", "anything", "", nil},
		{"empty text", "", "a", nil},
		{"no occurrence", "hello", "xyz", nil},
		{"case insensitive", "Cat CAT cat", "cAt", []domain.Span{{Start: 0, End: 3}, {Start: 4, End: 7}, {Start: 8, End: 11}}},
		{"dot is literal", "a.b axb", ".", []domain.Span{{Start: 1, End: 2}}},
		{"parens are literal", "(x) (x) x", "(x)", []domain.Span{{Start: 0, End: 3}, {Start: 4, End: 7}}},
		{"star is literal", "a*b aab", "a*", []domain.Span{{Start: 0, End: 2}}},
		{"backslash is literal", `C:\path`, `\p`, []domain.Span{{Start: 2, End: 4}}},
		{"non-overlapping", "aaaa", "aa", []domain.Span{{Start: 0, End: 2}, {Start: 2, End: 4}}},
		{"byte offsets for multibyte text", "日本語と日本", "日本", []domain.Span{{Start: 0, End: 6}, {Start: 12, End: 18}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.query))
		})
	}
}

// Highlighting the same text again must give exactly the same spans.
func TestHighlight_Idempotent(t *testing.T) {
	text := "mark my words, Mark"

	first := Highlight(text, "mark")
	second := Highlight(text, "mark")

	assert.Equal(t, first, second)
	assert.Equal(t, []domain.Span{{Start: 0, End: 4}, {Start: 15, End: 19}}, first)
}
