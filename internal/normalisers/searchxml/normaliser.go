package searchxml

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles search.xml documents.
type Normaliser struct{}

// New creates a new search.xml normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns "searchxml".
func (n *Normaliser) Name() string {
	return "searchxml"
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/xml", "text/xml"}
}

// Sniff reports whether the root element is <search>.
func (n *Normaliser) Sniff(content []byte) bool {
	return normalisers.RootElement(content) == "search"
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 100
}

type document struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	Title   string `xml:"title"`
	URL     string `xml:"url"`
	Content string `xml:"content"`
}

// Normalise decodes every <entry> in document order.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawIndex) ([]domain.Article, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	var doc document
	d := xml.NewDecoder(bytes.NewReader(normalisers.Body(raw.Content)))
	d.Entity = xml.HTMLEntity
	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode search.xml: %w", err)
	}

	articles := make([]domain.Article, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		articles = append(articles, normalisers.NewArticle(e.Title, e.URL, e.Content))
	}
	return articles, nil
}
