package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// reindexInterval caps how often file events translate into a rebuild.
// Browsers rewrite the bookmarks file in bursts; one rebuild per
// interval covers the whole burst.
const reindexInterval = 2 * time.Second

// BookmarkWatcher reindexes bookmarks when a browser rewrites a
// bookmarks file. The profile directories are watched rather than the
// files themselves because browsers replace the file atomically,
// which would orphan a per-file watch.
type BookmarkWatcher struct {
	indexer *BookmarkIndexer
	index   driving.IndexService
	limiter *rate.Limiter
}

// NewBookmarkWatcher creates a watcher that triggers index rebuilds.
func NewBookmarkWatcher(indexer *BookmarkIndexer, index driving.IndexService) *BookmarkWatcher {
	return &BookmarkWatcher{
		indexer: indexer,
		index:   index,
		limiter: rate.NewLimiter(rate.Every(reindexInterval), 1),
	}
}

// Run watches the browser profile directories until ctx is cancelled.
// Returns an error only when the watcher cannot be set up; watch-time
// errors are logged and skipped.
func (w *BookmarkWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, file := range w.indexer.BookmarkFiles() {
		dir := filepath.Dir(file)
		if err := watcher.Add(dir); err != nil {
			logger.Warn("cannot watch %s: %v", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		logger.Info("no browser profiles to watch")
		<-ctx.Done()
		return nil
	}
	logger.Info("watching %d profile directories for bookmark changes", watched)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.isBookmarkEvent(event) {
				continue
			}
			if !w.limiter.Allow() {
				logger.Debug("bookmark change coalesced: %s", event.Name)
				continue
			}
			logger.Debug("bookmark change: %s", event.Name)
			w.index.RebuildBookmarks(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error: %v", err)
		}
	}
}

func (w *BookmarkWatcher) isBookmarkEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != bookmarksFileName {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
