package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/blogsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/blogsearch/internal/adapters/driven/content/markdown"
	"github.com/custodia-labs/blogsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/blogsearch/internal/connectors"
	"github.com/custodia-labs/blogsearch/internal/connectors/filesystem"
	"github.com/custodia-labs/blogsearch/internal/connectors/github"
	"github.com/custodia-labs/blogsearch/internal/connectors/web"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/core/services"
	"github.com/custodia-labs/blogsearch/internal/normalisers"
	"github.com/custodia-labs/blogsearch/internal/normalisers/feed"
	"github.com/custodia-labs/blogsearch/internal/normalisers/searchjson"
	"github.com/custodia-labs/blogsearch/internal/normalisers/searchxml"
)

// openConfigStore opens the file named by --config, or the default.
func openConfigStore() (*file.ConfigStore, error) {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return store, nil
}

// loadSettings resolves the effective settings for this invocation.
func loadSettings() (domain.Settings, error) {
	store, err := openConfigStore()
	if err != nil {
		return domain.Settings{}, err
	}

	settings, err := services.NewSettingsService(store).Resolve(sourceFlag)
	if errors.Is(err, domain.ErrNoSource) {
		return settings, fmt.Errorf("%w: pass --source or run 'blogsearch settings set %s <uri>'",
			err, services.KeyIndexSource)
	}
	return settings, err
}

// newSession builds a search session over the configured index.
func newSession(ctx context.Context, settings domain.Settings) (*services.SearchService, error) {
	source, err := buildSource(ctx, settings)
	if err != nil {
		return nil, err
	}
	return services.NewSearchService(source, services.WithRetryInterval(settings.RetryInterval)), nil
}

// buildSource picks the index source for the settings' URI: a SQLite
// export, a directory of Markdown posts, or an index document fetched by
// a connector and decoded by a normaliser.
func buildSource(ctx context.Context, settings domain.Settings) (driven.IndexSource, error) {
	uri := settings.SourceURI

	switch {
	case connectors.Scheme(uri) == sqlite.Scheme:
		return sqlite.NewSource(uri)
	case connectors.Scheme(uri) == markdown.Scheme, markdown.IsPostDirectory(uri):
		return markdown.NewSource(uri), nil
	}

	registry := connectors.NewRegistry(
		web.New(settings.HTTPTimeout, settings.UserAgent),
		filesystem.New(),
		github.New(github.NewClient(ctx, settings.GitHubToken, settings.HTTPTimeout)),
	)
	if _, err := registry.Resolve(uri); err != nil {
		return nil, err
	}

	return services.NewDocumentSource(uri, registry, normalisers.NewRegistry(
		searchxml.New(),
		searchjson.New(),
		feed.New(),
	)), nil
}

// localPath returns the filesystem path behind uri when the index lives
// on this machine.
func localPath(uri string) (string, bool) {
	var path string
	switch connectors.Scheme(uri) {
	case "file":
		path = filesystem.Path(uri)
	case markdown.Scheme:
		path = markdown.Root(uri)
	case sqlite.Scheme:
		source, err := sqlite.NewSource(uri)
		if err != nil {
			return "", false
		}
		path = source.Path()
	default:
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
