package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve search as a JSON HTTP API",
	Long: `Start an HTTP server answering search queries for page scripts.

Endpoints:
  GET /api/search?q=cat   results with <mark> highlighted HTML
  GET /api/stats          index state and size
  GET /healthz            liveness

With --watch and a local index file or post directory, the index is
reloaded into a fresh session whenever it changes on disk.

Examples:
  blogsearch serve --source public/search.xml --watch
  blogsearch serve --addr 127.0.0.1:4001 --source https://example.com/search.xml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.addr or :8080)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload the index when a local source changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if _, err := buildSource(cmd.Context(), settings); err != nil {
		return err
	}

	var watchPath string
	if serveWatch {
		path, ok := localPath(settings.SourceURI)
		if !ok {
			return fmt.Errorf("--watch needs a local index source, got %q", settings.SourceURI)
		}
		watchPath = path
	}

	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	server, err := httpapi.NewServer(func() driving.SearchService {
		session, err := newSession(ctx, settings)
		if err != nil {
			logger.Warn("Creating session: %v", err)
			return nil
		}
		return session
	})
	if err != nil {
		return err
	}

	// Warm the index so the first page query is not the one paying for it.
	go server.Session().Load(ctx)

	if watchPath != "" {
		go func() {
			if err := server.Watch(ctx, watchPath, 0); err != nil {
				logger.Warn("Watcher stopped: %v", err)
			}
		}()
	}

	addr := serveAddr
	if addr == "" {
		addr = settings.ServerAddr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Search API listening on http://%s\n", displayAddr(addr))

	if err := server.Run(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// displayAddr fills in localhost for addresses that listen on all hosts.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
