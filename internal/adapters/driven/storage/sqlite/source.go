package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/logger"
	"github.com/custodia-labs/blogsearch/internal/normalisers"
)

// Scheme is the URI scheme served by this package.
const Scheme = "sqlite"

// DefaultTable is read when the URI names no table.
const DefaultTable = "posts"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Ensure Source implements the interface.
var _ driven.IndexSource = (*Source)(nil)

// Source reads articles from one table of a SQLite database.
type Source struct {
	uri   string
	path  string
	table string
}

// NewSource parses a sqlite:// URI.
func NewSource(uri string) (*Source, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != Scheme {
		return nil, fmt.Errorf("%w: not a %s:// URI: %q", domain.ErrInvalidInput, Scheme, uri)
	}

	path := u.Host + u.Path
	if path == "" {
		return nil, fmt.Errorf("%w: %q names no database file", domain.ErrInvalidInput, uri)
	}

	table := u.Query().Get("table")
	if table == "" {
		table = DefaultTable
	}
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", domain.ErrInvalidInput, table)
	}

	return &Source{uri: uri, path: path, table: table}, nil
}

// URI returns the source URI.
func (s *Source) URI() string {
	return s.uri
}

// Path returns the database file path.
func (s *Source) Path() string {
	return s.path
}

// Table returns the table articles are read from.
func (s *Source) Table() string {
	return s.table
}

// Articles reads every row of the table in rowid order.
func (s *Source) Articles(ctx context.Context) ([]domain.Article, error) {
	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	//nolint:gosec // G201: table is validated against identifier above.
	query := fmt.Sprintf(
		`SELECT COALESCE(title, ''), COALESCE(url, ''), COALESCE(content, '') FROM "%s" ORDER BY rowid`,
		s.table,
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var title, link, content string
		if err := rows.Scan(&title, &link, &content); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		articles = append(articles, normalisers.NewArticle(title, link, content))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	logger.Debug("Read %d rows from %s:%s", len(articles), s.path, s.table)
	return articles, nil
}
