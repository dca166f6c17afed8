package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Load the index and report its size",
	Long: `Loads the configured index once and prints the load state, the number
of articles and the source. A failed load is reported as not_loaded; the
reason is logged to stderr.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	session, err := newSession(cmd.Context(), settings)
	if err != nil {
		return err
	}

	session.Load(cmd.Context())
	stats := session.Stats()

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Source:   %s\n", stats.SourceURI)
	cmd.Printf("State:    %s\n", stats.State)
	cmd.Printf("Articles: %d\n", stats.Articles)
	return nil
}
