// Package cli implements the blogsearch command-line interface. It is the
// composition root: commands resolve settings, build the index source and
// hand a search session to the driving adapters.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blogsearch/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

var (
	// Global flags
	configPath string
	sourceFlag string
	verbose    bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "blogsearch",
	Short: "Full-text search over a static blog's article index",
	Long: `blogsearch loads a blog's pre-generated article index (search.xml,
search.json, an RSS/Atom feed, a SQLite export or a directory of Markdown
posts) and answers literal, case-insensitive queries with highlighted
snippets.

The index source comes from --source or index.source in the config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.blogsearch/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "index source URI or path (overrides index.source)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI. Interrupts cancel the command context, which
// shuts the servers down.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
