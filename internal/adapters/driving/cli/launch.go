package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

var launchElevated bool

var launchCmd = &cobra.Command{
	Use:   "launch [result-id]",
	Short: "Launch a result from the most recent query",
	Long: `Dispatches the action recorded for a result id: starts the
application, activates the packaged app, or opens the URL.

Result ids expire when a new query runs; an expired id requires
querying again.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().BoolVar(&launchElevated, "elevated", false, "request an elevated launch (executables only)")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	if actionService == nil {
		return errors.New("action service not configured")
	}

	if err := actionService.Execute(cmd.Context(), args[0], launchElevated); err != nil {
		if errors.Is(err, domain.ErrResultExpired) {
			return fmt.Errorf("result id %q has expired, run a new query first", args[0])
		}
		return fmt.Errorf("launch failed: %w", err)
	}

	cmd.Printf("Launched %s\n", args[0])
	return nil
}
