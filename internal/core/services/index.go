package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

var _ driving.IndexService = (*IndexOrchestrator)(nil)

// IndexOrchestrator drives full catalog rebuilds. Each rebuild scans
// from scratch and atomically swaps the shared catalog, so overlapping
// rebuilds settle on whichever finished last.
type IndexOrchestrator struct {
	appIndexer      *AppIndexer
	bookmarkIndexer *BookmarkIndexer
	appCatalog      driven.ApplicationCatalog
	bookmarkCatalog driven.BookmarkCatalog
	settings        driving.SettingsService
}

// NewIndexOrchestrator wires the two indexers to their catalogs.
func NewIndexOrchestrator(
	appIndexer *AppIndexer,
	bookmarkIndexer *BookmarkIndexer,
	appCatalog driven.ApplicationCatalog,
	bookmarkCatalog driven.BookmarkCatalog,
	settings driving.SettingsService,
) *IndexOrchestrator {
	return &IndexOrchestrator{
		appIndexer:      appIndexer,
		bookmarkIndexer: bookmarkIndexer,
		appCatalog:      appCatalog,
		bookmarkCatalog: bookmarkCatalog,
		settings:        settings,
	}
}

// Rebuild rebuilds both catalogs concurrently and returns the new
// sizes once both swaps have completed.
func (o *IndexOrchestrator) Rebuild(ctx context.Context) driving.IndexStatus {
	logger.Section("Full Index Rebuild")

	var status driving.IndexStatus
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		status.Applications = o.RebuildApplications(ctx)
	}()
	go func() {
		defer wg.Done()
		status.Bookmarks = o.RebuildBookmarks(ctx)
	}()
	wg.Wait()
	return status
}

// RebuildApplications rescans the application sources and swaps the
// application catalog, returning the new size.
func (o *IndexOrchestrator) RebuildApplications(ctx context.Context) int {
	generation := uuid.NewString()
	logger.Debug("application rebuild %s starting", generation)

	exclusions := o.settings.Get(ctx).SystemToolExclusions
	apps := o.appIndexer.BuildIndex(ctx, exclusions)
	o.appCatalog.Replace(apps)

	logger.Info("application rebuild %s: %d entries", generation, len(apps))
	return len(apps)
}

// RebuildBookmarks rereads the browser profiles and swaps the bookmark
// catalog, returning the new size.
func (o *IndexOrchestrator) RebuildBookmarks(ctx context.Context) int {
	generation := uuid.NewString()
	logger.Debug("bookmark rebuild %s starting", generation)

	bookmarks := o.bookmarkIndexer.Load(ctx)
	o.bookmarkCatalog.Replace(bookmarks)

	logger.Info("bookmark rebuild %s: %d entries", generation, len(bookmarks))
	return len(bookmarks)
}

// Status returns the current catalog sizes without rebuilding.
func (o *IndexOrchestrator) Status() driving.IndexStatus {
	return driving.IndexStatus{
		Applications: o.appCatalog.Len(),
		Bookmarks:    o.bookmarkCatalog.Len(),
	}
}
