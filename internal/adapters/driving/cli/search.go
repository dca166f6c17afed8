package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the blog's articles",
	Long: `Finds every article whose title or content contains the query as a
literal, case-insensitive substring. Results keep index order and show a
snippet around the first match in the content.

An empty query prints nothing; a query with no matches prints
"No matching articles found".`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is one result in --json output.
type searchResultJSON struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	TitleHTML   string `json:"title_html"`
	SnippetHTML string `json:"snippet_html"`
}

// searchOutputJSON is the --json output document.
type searchOutputJSON struct {
	Query       string              `json:"query"`
	Status      domain.SearchStatus `json:"status"`
	Placeholder string              `json:"placeholder"`
	Results     []searchResultJSON  `json:"results"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	session, err := newSession(cmd.Context(), settings)
	if err != nil {
		return err
	}

	resp := session.Search(cmd.Context(), args[0])
	if searchLimit > 0 && len(resp.Results) > searchLimit {
		resp.Results = resp.Results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}

	cmd.Print(render.NewTerminal(nil, isTerminal(cmd)).Render(resp))
	return nil
}

func outputSearchJSON(cmd *cobra.Command, resp domain.SearchResponse) error {
	out := searchOutputJSON{
		Query:       resp.Query,
		Status:      resp.Status,
		Placeholder: render.Placeholder(resp.Status),
		Results:     make([]searchResultJSON, len(resp.Results)),
	}
	for i, r := range resp.Results {
		item := render.HTML(r)
		out.Results[i] = searchResultJSON{
			Title:       r.Title,
			Snippet:     r.Snippet,
			URL:         r.URL,
			TitleHTML:   item.TitleHTML,
			SnippetHTML: item.SnippetHTML,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// isTerminal reports whether the command writes straight to a terminal,
// in which case output is styled.
func isTerminal(cmd *cobra.Command) bool {
	return cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}
