package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

var (
	queryMode string
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Rank applications and bookmarks against a text query",
	Long: `Matches the text against the indexed applications and bookmarks and
prints the ranked results. Result ids stay valid until the next query
and can be launched with 'launcha launch <id>'.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryMode, "mode", "m", "", "result filter: all, application, bookmark or search")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	results, err := queryService.Query(cmd.Context(), args[0], queryMode)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputQueryJSON(cmd, results)
	}
	return outputQueryTable(cmd, results)
}

func outputQueryJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%s)\n", i+1, results[i].Title, results[i].ID)
		if results[i].Subtitle != "" {
			cmd.Printf("      %s\n", results[i].Subtitle)
		}
	}
	cmd.Println()
	return nil
}
