package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blogsearch/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Manage application settings",
	Long: `View and change the settings stored in the config file.

Keys:
  index.source            index URI or path
  http.timeout            HTTP fetch timeout, e.g. "30s"
  http.user_agent         User-Agent sent with HTTP fetches
  loader.retry_interval   minimum gap between retries after a failed load
  github.token            token for github:// sources
  server.addr             listen address for 'blogsearch serve'`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}
	// Defaults fill in for unset keys; a missing source is not an error here.
	settings, _ := services.NewSettingsService(store).Resolve(sourceFlag)

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Index]")
	if settings.SourceURI != "" {
		cmd.Printf("  Source: %s\n", settings.SourceURI)
	} else {
		cmd.Printf("  Source: (not set)\n")
	}
	cmd.Printf("  Retry interval: %s\n", settings.RetryInterval)
	cmd.Println()

	cmd.Println("[HTTP]")
	cmd.Printf("  Timeout: %s\n", settings.HTTPTimeout)
	cmd.Printf("  User agent: %s\n", settings.UserAgent)
	cmd.Println()

	cmd.Println("[GitHub]")
	if settings.GitHubToken != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.GitHubToken))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.ServerAddr)
	cmd.Println()

	cmd.Printf("Config file: %s\n", store.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	store, err := openConfigStore()
	if err != nil {
		return err
	}
	if err := services.NewSettingsService(store).Set(key, value); err != nil {
		if !slices.Contains(services.KnownKeys(), key) {
			return fmt.Errorf("%w (known keys: %v)", err, services.KnownKeys())
		}
		return err
	}

	if key == services.KeyGitHubToken {
		value = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}
	cmd.Println(store.Path())
	return nil
}

// maskAPIKey hides all but the ends of a secret.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
