package domain

import "iter"

// Article is one searchable record of the blog index.
type Article struct {
	// Title is the display title. Usually non-empty, but not required.
	Title string

	// URL is the destination path, trimmed of surrounding whitespace.
	URL string

	// Content is the plain-text body with all markup stripped.
	Content string
}

// Corpus is the ordered set of articles loaded for a session.
// Order follows the source document. A Corpus never changes after
// construction; the zero value is an empty corpus.
type Corpus struct {
	articles []Article
}

// NewCorpus builds a corpus from articles. The slice is copied so later
// changes by the caller do not leak into the corpus.
func NewCorpus(articles []Article) *Corpus {
	c := &Corpus{articles: make([]Article, len(articles))}
	copy(c.articles, articles)
	return c
}

// Len returns the number of articles.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.articles)
}

// At returns the article at position i.
func (c *Corpus) At(i int) Article {
	return c.articles[i]
}

// Articles returns a copy of the articles in corpus order.
func (c *Corpus) Articles() []Article {
	if c == nil {
		return []Article{}
	}
	out := make([]Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// All iterates over the articles in corpus order.
func (c *Corpus) All() iter.Seq2[int, Article] {
	return func(yield func(int, Article) bool) {
		if c == nil {
			return
		}
		for i, a := range c.articles {
			if !yield(i, a) {
				return
			}
		}
	}
}
