package github

import (
	"context"
	"fmt"

	"github.com/custodia-labs/blogsearch/internal/connectors"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector fetches github:// sources.
type Connector struct {
	client *Client
}

// New creates a GitHub connector using client.
func New(client *Client) *Connector {
	return &Connector{client: client}
}

// Schemes returns "github".
func (c *Connector) Schemes() []string {
	return []string{Scheme}
}

// Fetch reads the file named by uri from its repository.
func (c *Connector) Fetch(ctx context.Context, uri string) (*domain.RawIndex, error) {
	loc, err := ParseURI(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	logger.Debug("GitHub contents %s/%s %s (ref %q)", loc.Owner, loc.Repo, loc.Path, loc.Ref)
	content, err := c.client.GetFileContent(ctx, loc)
	if err != nil {
		return nil, classify(loc, err)
	}
	if rl := c.client.RateLimiter(); rl.Remaining() >= 0 {
		logger.Debug("GitHub quota: %d of %d requests left", rl.Remaining(), rl.Limit())
	}

	return &domain.RawIndex{
		URI:      uri,
		MIMEType: connectors.MIMEFromPath(loc.Path),
		Content:  content,
		Metadata: map[string]any{
			"owner": loc.Owner,
			"repo":  loc.Repo,
			"path":  loc.Path,
			"ref":   loc.Ref,
		},
	}, nil
}

// classify maps API failures onto domain errors and adds a hint for the
// ones a configuration change can fix.
func classify(loc Location, err error) error {
	switch {
	case IsNotFound(err):
		ref := loc.Ref
		if ref == "" {
			ref = "default branch"
		}
		return fmt.Errorf("%w: %s in %s/%s (%s): %w", domain.ErrNotFound, loc.Path, loc.Owner, loc.Repo, ref, err)
	case IsUnauthorized(err):
		return fmt.Errorf("%w (check github.token)", err)
	case IsRateLimited(err):
		return fmt.Errorf("%w (set github.token for a higher quota)", err)
	}
	return err
}
