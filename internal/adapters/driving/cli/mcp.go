package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
the blog.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead.

Tools:
  search        literal search with highlighted snippets

Resources:
  index://stats            index state and size
  index://search/{query}   plain-text results

Examples:
  # Stdio mode (default)
  blogsearch mcp serve --source https://example.com/search.xml

  # HTTP mode (for MCP Inspector, remote access)
  blogsearch mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "blog": {
        "command": "/path/to/blogsearch",
        "args": ["mcp", "serve", "--source", "https://example.com/search.xml"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	session, err := newSession(cmd.Context(), settings)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Search: session})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
