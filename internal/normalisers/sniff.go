package normalisers

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/markup"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Body returns content without a leading byte order mark or whitespace.
func Body(content []byte) []byte {
	return bytes.TrimLeft(bytes.TrimPrefix(content, utf8BOM), " \t\r\n")
}

// RootElement returns the lower-cased name of the first XML element in
// content, skipping the prolog, comments and doctype. It returns "" when
// content is not markup.
func RootElement(content []byte) string {
	body := Body(content)
	if len(body) == 0 || body[0] != '<' {
		return ""
	}

	d := xml.NewDecoder(bytes.NewReader(body))
	d.Strict = false
	for {
		tok, err := d.Token()
		if err != nil {
			return ""
		}
		if se, ok := tok.(xml.StartElement); ok {
			return strings.ToLower(se.Name.Local)
		}
	}
}

// NewArticle builds an article from index fields. Content is reduced to
// its text and the URL is trimmed; the title is kept as written.
func NewArticle(title, url, content string) domain.Article {
	return domain.Article{
		Title:   title,
		URL:     strings.TrimSpace(url),
		Content: markup.Strip(content),
	}
}
