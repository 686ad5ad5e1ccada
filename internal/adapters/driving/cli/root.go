// Package cli provides the cobra command surface of the launcha CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// version is the CLI version, overridable at build time.
var version = "0.1.0"

// Services injected by the composition root before Execute.
var (
	queryService    driving.QueryService
	actionService   driving.ActionService
	indexService    driving.IndexService
	settingsService driving.SettingsService
)

// Services aggregates the driving ports the commands depend on.
type Services struct {
	Query    driving.QueryService
	Action   driving.ActionService
	Index    driving.IndexService
	Settings driving.SettingsService
	Watcher  BookmarkWatcher
}

// SetServices wires the driving services into the command tree.
func SetServices(s *Services) {
	queryService = s.Query
	actionService = s.Action
	indexService = s.Index
	settingsService = s.Settings
	watcherService = s.Watcher
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "launcha",
	Short: "Fast application and bookmark launcher",
	Long: `Launcha indexes installed applications and browser bookmarks and
ranks them against partial text queries for instant launching.

Run without arguments to start the interactive launcher, or use the
subcommands for one-shot queries, launches and index management.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
