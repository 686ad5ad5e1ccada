package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	reindexApps      bool
	reindexBookmarks bool
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the application and bookmark catalogs",
	Long: `Rescans the application sources and browser profiles and swaps the
in-memory catalogs. Without flags both catalogs are rebuilt.`,
	RunE: runReindex,
}

func init() {
	reindexCmd.Flags().BoolVar(&reindexApps, "apps", false, "rebuild only the application catalog")
	reindexCmd.Flags().BoolVar(&reindexBookmarks, "bookmarks", false, "rebuild only the bookmark catalog")
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := cmd.Context()
	switch {
	case reindexApps && !reindexBookmarks:
		count := indexService.RebuildApplications(ctx)
		cmd.Printf("Indexed %d applications\n", count)
	case reindexBookmarks && !reindexApps:
		count := indexService.RebuildBookmarks(ctx)
		cmd.Printf("Indexed %d bookmarks\n", count)
	default:
		status := indexService.Rebuild(ctx)
		cmd.Printf("Indexed %d applications, %d bookmarks\n", status.Applications, status.Bookmarks)
	}
	return nil
}
