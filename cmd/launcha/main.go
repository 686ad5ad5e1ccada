package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/launcha-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/launcha-cli/internal/adapters/driven/icons"
	"github.com/custodia-labs/launcha-cli/internal/adapters/driven/staticsrc"
	"github.com/custodia-labs/launcha-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/launcha-cli/internal/adapters/driven/system"
	"github.com/custodia-labs/launcha-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/core/services"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings persist under ~/.launcha; everything else is rebuilt
	// in memory on each start.
	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("initialising settings store: %w", err)
	}
	settingsService := services.NewSettingsService(settingsStore)

	appCatalog := memory.NewApplicationCatalog()
	bookmarkCatalog := memory.NewBookmarkCatalog()
	pendingStore := memory.NewPendingActionStore()

	// The application sources can be served from a JSON manifest,
	// which is also how non-Windows hosts get a usable index.
	var (
		shortcuts driven.ShortcutResolver
		registry  driven.UninstallRegistry
		packages  driven.PackageEnumerator
	)
	if manifestPath := os.Getenv("LAUNCHA_MANIFEST"); manifestPath != "" {
		source, err := staticsrc.Load(manifestPath)
		if err != nil {
			return fmt.Errorf("loading application manifest: %w", err)
		}
		shortcuts = source
		registry = source
		packages = source
	}

	// Icon cache failures degrade to uncached, icon-less results.
	var iconRenderer driven.IconRenderer
	if cache, err := icons.NewCache(nil, ""); err == nil {
		iconRenderer = cache
		defer cache.Close()
	} else {
		logger.Warn("icon cache unavailable: %v", err)
	}

	appIndexer := services.NewAppIndexer(
		services.DefaultAppIndexerConfig(),
		shortcuts,
		registry,
		packages,
		iconRenderer,
		system.NewFoldingKeywordExpander(),
	)
	bookmarkIndexer := services.NewBookmarkIndexer("")

	orchestrator := services.NewIndexOrchestrator(
		appIndexer,
		bookmarkIndexer,
		appCatalog,
		bookmarkCatalog,
		settingsService,
	)

	queryService := services.NewQueryService(appCatalog, bookmarkCatalog, pendingStore, settingsService)
	actionService := services.NewActionService(
		pendingStore,
		system.NewProcessLauncher(),
		system.NewPackageActivator(),
		system.NewURLOpener(),
		system.NewNullInputMethodService(),
		system.NewNullWindowService(),
	)

	cli.SetServices(&cli.Services{
		Query:    queryService,
		Action:   actionService,
		Index:    orchestrator,
		Settings: settingsService,
		Watcher:  services.NewBookmarkWatcher(bookmarkIndexer, orchestrator),
	})

	// Catalogs are memory resident, so populate them before any
	// command runs.
	status := orchestrator.Rebuild(context.Background())
	logger.Debug("startup index: %d applications, %d bookmarks", status.Applications, status.Bookmarks)

	return cli.Execute()
}
