package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/services"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive search modal",
	Long: `Open the interactive search modal. The index loads as soon as the modal
opens and results update on every keystroke.

The URL of the chosen result is printed on exit, resolved against the
index source when the index is served over HTTP. With --open the URL is
also opened in the default browser.

Controls:
  (type)   - Search
  ↑, ↓     - Move the selection
  Enter    - Print the selected URL and exit
  Ctrl+Y   - Copy the selected URL
  Esc      - Clear and close`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiOpen bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiOpen, "open", false, "open the chosen result in the default browser")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	session, err := newSession(cmd.Context(), settings)
	if err != nil {
		return err
	}

	actions := services.NewResultActionService(settings.SourceURI)
	app, err := tui.NewApp(tui.NewPorts(session, actions))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Log lines would tear the alternate screen; they are written once
	// the modal closes.
	release := logger.Hold()
	defer release()
	chosen, err := app.Run()
	release()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if chosen == "" {
		return nil
	}

	cmd.Println(actions.ResolveURL(chosen))
	if tuiOpen {
		if err := actions.OpenURL(cmd.Context(), domain.MatchResult{URL: chosen}); err != nil {
			logger.Warn("Could not open %s: %v", chosen, err)
		}
	}
	return nil
}
