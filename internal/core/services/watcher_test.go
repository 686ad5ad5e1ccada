package services

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

// countingIndex records rebuild invocations.
type countingIndex struct {
	bookmarkRebuilds atomic.Int64
}

func (c *countingIndex) Rebuild(context.Context) driving.IndexStatus { return driving.IndexStatus{} }
func (c *countingIndex) RebuildApplications(context.Context) int     { return 0 }
func (c *countingIndex) RebuildBookmarks(context.Context) int {
	c.bookmarkRebuilds.Add(1)
	return 0
}
func (c *countingIndex) Status() driving.IndexStatus { return driving.IndexStatus{} }

func TestBookmarkWatcher_EventFilter(t *testing.T) {
	w := NewBookmarkWatcher(nil, nil)

	assert.True(t, w.isBookmarkEvent(fsnotify.Event{
		Name: filepath.Join("profile", bookmarksFileName),
		Op:   fsnotify.Write,
	}))
	assert.True(t, w.isBookmarkEvent(fsnotify.Event{
		Name: filepath.Join("profile", bookmarksFileName),
		Op:   fsnotify.Create,
	}))
	assert.False(t, w.isBookmarkEvent(fsnotify.Event{
		Name: filepath.Join("profile", "Bookmarks.bak"),
		Op:   fsnotify.Write,
	}))
	assert.False(t, w.isBookmarkEvent(fsnotify.Event{
		Name: filepath.Join("profile", bookmarksFileName),
		Op:   fsnotify.Chmod,
	}))
}

func TestBookmarkWatcher_StopsWithoutProfiles(t *testing.T) {
	indexer := NewBookmarkIndexer(filepath.Join(t.TempDir(), "absent"))
	w := NewBookmarkWatcher(indexer, &countingIndex{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestBookmarkWatcher_RewriteTriggersRebuild(t *testing.T) {
	userData := t.TempDir()
	writeBookmarksFile(t, userData, "Default", sampleBookmarks)

	indexer := NewBookmarkIndexer(userData)
	index := &countingIndex{}
	w := NewBookmarkWatcher(indexer, index)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to install its watches.
	time.Sleep(200 * time.Millisecond)

	file := filepath.Join(userData, "Default", bookmarksFileName)
	require.NoError(t, os.WriteFile(file, []byte(sampleBookmarks), 0o644))

	require.Eventually(t, func() bool {
		return index.bookmarkRebuilds.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
