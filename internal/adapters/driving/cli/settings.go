package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage launcher settings",
	Long: `View and configure query behaviour, result categories, mode prefixes
and system tool exclusions.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long: `Change one or more settings. Only the flags given are applied;
numeric values outside their range are clamped.

Examples:
  launcha settings set --query-delay 300 --max-results 30
  launcha settings set --prefix-app a --bookmarks=false
  launcha settings set --exclude "C:\Windows\System32\calc.exe"`,
	RunE: runSettingsSet,
}

func init() {
	flags := settingsSetCmd.Flags()
	flags.Int("query-delay", 0, "debounce delay before querying, in milliseconds")
	flags.Int("max-results", 0, "maximum number of results per query")
	flags.Bool("apps", true, "include application results")
	flags.Bool("bookmarks", true, "include bookmark results")
	flags.String("prefix-app", "", "mode prefix for application-only queries")
	flags.String("prefix-bookmark", "", "mode prefix for bookmark-only queries")
	flags.String("prefix-search", "", "mode prefix for web-search queries")
	flags.StringSlice("exclude", nil, "system tool paths to exclude from the index (replaces the list)")
	flags.Bool("force-english", false, "switch to an English input layout while the launcher is open")
	flags.Bool("startup", false, "start the launcher on login")
	flags.Bool("debug", false, "enable debug mode")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	printSettings(cmd, settingsService.Get(cmd.Context()))
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	update := driving.SettingsUpdate{}
	flags := cmd.Flags()

	if flags.Changed("query-delay") {
		v, _ := flags.GetInt("query-delay")
		update.QueryDelayMS = &v
	}
	if flags.Changed("max-results") {
		v, _ := flags.GetInt("max-results")
		update.MaxResults = &v
	}
	if flags.Changed("apps") {
		v, _ := flags.GetBool("apps")
		update.EnableAppResults = &v
	}
	if flags.Changed("bookmarks") {
		v, _ := flags.GetBool("bookmarks")
		update.EnableBookmarkResults = &v
	}
	if flags.Changed("prefix-app") {
		v, _ := flags.GetString("prefix-app")
		update.PrefixApp = &v
	}
	if flags.Changed("prefix-bookmark") {
		v, _ := flags.GetString("prefix-bookmark")
		update.PrefixBookmark = &v
	}
	if flags.Changed("prefix-search") {
		v, _ := flags.GetString("prefix-search")
		update.PrefixSearch = &v
	}
	if flags.Changed("exclude") {
		v, _ := flags.GetStringSlice("exclude")
		update.SystemToolExclusions = v
	}
	if flags.Changed("force-english") {
		v, _ := flags.GetBool("force-english")
		update.ForceEnglishInput = &v
	}
	if flags.Changed("startup") {
		v, _ := flags.GetBool("startup")
		update.LaunchOnStartup = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		update.DebugMode = &v
	}

	settings, err := settingsService.Update(cmd.Context(), update)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	cmd.Println("Settings updated.")
	cmd.Println()
	printSettings(cmd, settings)
	return nil
}

func printSettings(cmd *cobra.Command, s domain.Settings) {
	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Query]")
	cmd.Printf("  Delay: %d ms\n", s.QueryDelayMS)
	cmd.Printf("  Max results: %d\n", s.MaxResults)
	cmd.Printf("  Applications: %s\n", onOff(s.EnableAppResults))
	cmd.Printf("  Bookmarks: %s\n", onOff(s.EnableBookmarkResults))
	cmd.Println()

	cmd.Println("[Prefixes]")
	cmd.Printf("  Application: %s\n", s.PrefixApp)
	cmd.Printf("  Bookmark: %s\n", s.PrefixBookmark)
	cmd.Printf("  Search: %s\n", s.PrefixSearch)
	cmd.Println()

	cmd.Println("[System]")
	if len(s.SystemToolExclusions) > 0 {
		cmd.Printf("  Exclusions: %s\n", strings.Join(s.SystemToolExclusions, ", "))
	} else {
		cmd.Println("  Exclusions: (none)")
	}
	cmd.Printf("  Force English input: %s\n", onOff(s.ForceEnglishInput))
	cmd.Printf("  Launch on startup: %s\n", onOff(s.LaunchOnStartup))
	cmd.Printf("  Debug mode: %s\n", onOff(s.DebugMode))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
