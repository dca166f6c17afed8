package filesystem

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/blogsearch/internal/connectors"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector reads a single file.
type Connector struct{}

// New creates a new filesystem connector.
func New() *Connector {
	return &Connector{}
}

// Schemes returns "file". Bare paths are routed here as well.
func (c *Connector) Schemes() []string {
	return []string{"file"}
}

// Fetch reads the file named by uri.
func (c *Connector) Fetch(ctx context.Context, uri string) (*domain.RawIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := Path(uri)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &domain.RawIndex{
		URI:      uri,
		MIMEType: connectors.MIMEFromPath(path),
		Content:  content,
		Metadata: map[string]any{
			"path":     path,
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}, nil
}

// Path converts a file:// URI or a bare path to a local path.
func Path(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}
