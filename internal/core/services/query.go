package services

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// Snippet geometry, in runes.
const (
	// SnippetLeadRunes is how much content precedes the first match.
	SnippetLeadRunes = 40

	// SnippetTrailRunes is how much content follows the end of the first match.
	SnippetTrailRunes = 80

	// FallbackSnippetRunes is the excerpt length when only the title matched.
	FallbackSnippetRunes = 120

	// Ellipsis marks a truncated snippet edge.
	Ellipsis = "..."
)

// Query filters corpus for articles whose title or content contains query,
// case-insensitively, and returns them in corpus order with snippets and
// highlight spans. A blank query yields StatusEmptyQuery; a query that
// matches nothing yields StatusNoResults.
//
// The query is matched as typed. Only the blank check trims it.
//
// Matching lower-cases each rune, while highlighting uses regexp simple case
// folding. The two disagree on a few runes such as U+0130 (İ), so a result
// can match without carrying a highlight span.
func Query(corpus *domain.Corpus, query string) domain.SearchResponse {
	resp := domain.SearchResponse{
		Query:   query,
		Results: []domain.MatchResult{},
	}

	if strings.TrimSpace(query) == "" {
		resp.Status = domain.StatusEmptyQuery
		return resp
	}

	m := newMatcher(query)
	for _, article := range corpus.All() {
		content := []rune(article.Content)
		idx := indexFold(content, m.folded)
		if idx < 0 && indexFold([]rune(article.Title), m.folded) < 0 {
			continue
		}

		snippet := extractSnippet(content, idx, len(m.folded))
		resp.Results = append(resp.Results, domain.MatchResult{
			Title:             article.Title,
			Snippet:           snippet,
			URL:               article.URL,
			TitleHighlights:   m.highlight(article.Title),
			SnippetHighlights: m.highlight(snippet),
		})
	}

	if len(resp.Results) == 0 {
		resp.Status = domain.StatusNoResults
	} else {
		resp.Status = domain.StatusMatched
	}
	return resp
}

// extractSnippet cuts the excerpt shown with a result. idx is the rune
// position of the first content match, or -1 when only the title matched.
func extractSnippet(content []rune, idx, queryLen int) string {
	if idx < 0 {
		if len(content) <= FallbackSnippetRunes {
			return string(content)
		}
		return string(content[:FallbackSnippetRunes]) + Ellipsis
	}

	start := max(0, idx-SnippetLeadRunes)
	end := min(len(content), idx+queryLen+SnippetTrailRunes)

	var b strings.Builder
	if start > 0 {
		b.WriteString(Ellipsis)
	}
	b.WriteString(string(content[start:end]))
	if end < len(content) {
		b.WriteString(Ellipsis)
	}
	return b.String()
}

// indexFold returns the rune index of the first case-insensitive occurrence
// of folded (already lower-cased) in haystack, or -1. Folding is one rune to
// one rune, so the index is valid in the original text.
func indexFold(haystack, folded []rune) int {
	n := len(folded)
	if n == 0 {
		return 0
	}
outer:
	for i := 0; i+n <= len(haystack); i++ {
		for j := 0; j < n; j++ {
			if unicode.ToLower(haystack[i+j]) != folded[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

func foldRunes(s string) []rune {
	r := []rune(s)
	for i := range r {
		r[i] = unicode.ToLower(r[i])
	}
	return r
}
