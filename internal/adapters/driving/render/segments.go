package render

import (
	"strings"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// weave rebuilds text, passing plain stretches through plain and
// highlighted stretches through marked. Spans must be ordered; spans
// that overlap an earlier one or fall outside text are skipped.
func weave(text string, spans []domain.Span, plain, marked func(string) string) string {
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End <= sp.Start || sp.End > len(text) {
			continue
		}
		b.WriteString(plain(text[pos:sp.Start]))
		b.WriteString(marked(text[sp.Start:sp.End]))
		pos = sp.End
	}
	b.WriteString(plain(text[pos:]))
	return b.String()
}
