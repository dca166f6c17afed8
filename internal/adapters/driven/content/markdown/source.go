package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/logger"
	"github.com/custodia-labs/blogsearch/internal/normalisers"
)

// Scheme is the explicit URI scheme for post directories.
const Scheme = "markdown"

// Ensure Source implements the interface.
var _ driven.IndexSource = (*Source)(nil)

// Source reads articles from Markdown files under a directory.
type Source struct {
	uri  string
	root string
	md   goldmark.Markdown
}

// NewSource creates a source for uri, which may be a bare path or a
// file:// or markdown:// URI naming a directory.
func NewSource(uri string) *Source {
	return &Source{
		uri:  uri,
		root: Root(uri),
		md:   goldmark.New(),
	}
}

// Root converts uri to the directory path it names.
func Root(uri string) string {
	for _, prefix := range []string{Scheme + "://", "file://"} {
		if rest, ok := strings.CutPrefix(uri, prefix); ok {
			return rest
		}
	}
	return uri
}

// IsPostDirectory reports whether uri names an existing directory.
func IsPostDirectory(uri string) bool {
	info, err := os.Stat(Root(uri))
	return err == nil && info.IsDir()
}

// URI returns the source URI.
func (s *Source) URI() string {
	return s.uri
}

// Articles reads every post in lexical path order.
func (s *Source) Articles(ctx context.Context) ([]domain.Article, error) {
	paths, err := s.postPaths()
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		article, ok, err := s.readPost(path)
		if err != nil {
			return nil, err
		}
		if ok {
			articles = append(articles, article)
		}
	}

	logger.Debug("Read %d posts from %s", len(articles), s.root)
	return articles, nil
}

func (s *Source) postPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.root, err)
	}
	return paths, nil
}

// readPost returns ok=false for drafts.
func (s *Source) readPost(path string) (domain.Article, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Article{}, false, fmt.Errorf("reading %s: %w", path, err)
	}

	header, body, hasHeader := splitFrontMatter(string(data))
	var fm frontMatter
	if hasHeader {
		fm, err = parseFrontMatter(header)
		if err != nil {
			logger.Warn("ignoring front matter in %s: %v", path, err)
		}
	}
	if fm.Draft {
		logger.Debug("Skipping draft %s", path)
		return domain.Article{}, false, nil
	}

	title := fm.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	url := fm.Permalink
	if url == "" {
		url = fm.URL
	}
	if url == "" {
		url = "/" + slug.Make(title) + "/"
	}

	var rendered bytes.Buffer
	if err := s.md.Convert([]byte(body), &rendered); err != nil {
		return domain.Article{}, false, fmt.Errorf("rendering %s: %w", path, err)
	}

	return normalisers.NewArticle(title, url, strings.TrimSpace(rendered.String())), true, nil
}
