package searchjson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles search.json documents.
type Normaliser struct{}

// New creates a new search.json normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns "searchjson".
func (n *Normaliser) Name() string {
	return "searchjson"
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/json", "text/json"}
}

// Sniff reports whether content is a JSON array.
func (n *Normaliser) Sniff(content []byte) bool {
	body := normalisers.Body(content)
	return len(body) > 0 && body[0] == '['
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 100
}

type entry struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Normalise decodes the array in order. Null or missing fields become "".
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawIndex) ([]domain.Article, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	var entries []entry
	if err := json.Unmarshal(normalisers.Body(raw.Content), &entries); err != nil {
		return nil, fmt.Errorf("decode search.json: %w", err)
	}

	articles := make([]domain.Article, 0, len(entries))
	for _, e := range entries {
		articles = append(articles, normalisers.NewArticle(e.Title, e.URL, e.Content))
	}
	return articles, nil
}
