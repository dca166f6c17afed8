package services

import (
	"regexp"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// matcher holds the per-query state shared across every article.
type matcher struct {
	folded  []rune
	pattern *regexp.Regexp
}

func newMatcher(query string) *matcher {
	return &matcher{
		folded:  foldRunes(query),
		pattern: literalPattern(query),
	}
}

func (m *matcher) highlight(text string) []domain.Span {
	return spans(m.pattern, text)
}

// Highlight returns the byte spans of every non-overlapping, case-insensitive
// occurrence of query in text. The query is always matched literally:
// characters such as '.', '*' or '(' never act as pattern syntax.
// Spans are computed on the plain text, so highlighting the same text
// again yields the same spans.
func Highlight(text, query string) []domain.Span {
	if query == "" {
		return nil
	}
	return spans(literalPattern(query), text)
}

func literalPattern(query string) *regexp.Regexp {
	if query == "" {
		return nil
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}

func spans(pattern *regexp.Regexp, text string) []domain.Span {
	if pattern == nil || text == "" {
		return nil
	}
	locs := pattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]domain.Span, len(locs))
	for i, loc := range locs {
		out[i] = domain.Span{Start: loc[0], End: loc[1]}
	}
	return out
}
