package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip returns the concatenated text nodes of an HTML fragment.
// Input without markup is returned with entities decoded and nothing else changed.
func Strip(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	var b strings.Builder
	b.Grow(len(fragment))

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the normal end; anything else is unreachable for a
			// strings.Reader, and what was read so far is kept.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken,
			html.CommentToken, html.DoctypeToken:
			// Markup contributes no text.
		}
	}
}
