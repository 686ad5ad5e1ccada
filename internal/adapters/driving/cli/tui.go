package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launcha-cli/internal/adapters/driving/tui"
)

// BookmarkWatcher rebuilds the bookmark index when browser bookmark
// files change on disk.
type BookmarkWatcher interface {
	Run(ctx context.Context) error
}

// watcherService runs in the background while the TUI is open.
var watcherService BookmarkWatcher

var tuiMode string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive launcher",
	Long: `Start the interactive terminal launcher.

Type to search indexed applications and bookmarks; results update as
you type and are ranked by match quality.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Navigate results
  Enter              - Launch selected result
  Ctrl+E             - Launch elevated
  Ctrl+R             - Rebuild the index
  Esc                - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiMode, "mode", "m", "", "restrict results to one category (app, bookmark, search)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a renderer crash still prints a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if queryService == nil || actionService == nil {
		return errors.New("launcher services not configured")
	}

	// The TUI is long-running, so keep the bookmark index fresh while
	// it is open.
	if watcherService != nil {
		watchCtx, watchCancel := context.WithCancel(cmd.Context())
		defer watchCancel()

		go func() {
			if err := watcherService.Run(watchCtx); err != nil {
				fmt.Fprintf(os.Stderr, "bookmark watcher stopped: %v\n", err)
			}
		}()
	}

	model := tui.NewModel(queryService, actionService, indexService, settingsService, tuiMode)

	if err := tui.Run(cmd.Context(), model); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
