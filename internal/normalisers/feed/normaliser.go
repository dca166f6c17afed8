package feed

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles syndication feeds.
type Normaliser struct{}

// New creates a new feed normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns "feed".
func (n *Normaliser) Name() string {
	return "feed"
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"application/rss+xml",
		"application/atom+xml",
		"application/rdf+xml",
		"application/feed+json",
	}
}

// Sniff recognises RSS, Atom and RDF roots, and JSON Feed objects.
func (n *Normaliser) Sniff(content []byte) bool {
	switch normalisers.RootElement(content) {
	case "rss", "feed", "rdf":
		return true
	}
	body := normalisers.Body(content)
	if len(body) == 0 || body[0] != '{' {
		return false
	}
	head := body[:min(len(body), 512)]
	return bytes.Contains(head, []byte("jsonfeed.org/version"))
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise maps feed items to articles in feed order. Item content
// falls back to the description when the feed carries no full text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawIndex) ([]domain.Article, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		content := item.Content
		if content == "" {
			content = item.Description
		}
		articles = append(articles, normalisers.NewArticle(item.Title, item.Link, content))
	}
	return articles, nil
}
