package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launcha-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

func orchestratorFixture(t *testing.T, settings domain.Settings) (*IndexOrchestrator, *memory.ApplicationCatalog, *memory.BookmarkCatalog) {
	t.Helper()

	cfg, root := menuFixture(t)
	writeShortcut(t, root, "Editor.lnk")
	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"Editor.lnk": {},
	}}
	appIndexer := NewAppIndexer(cfg, resolver, nil, nil, nil, nil)

	userData := t.TempDir()
	writeBookmarksFile(t, userData, "Default", sampleBookmarks)
	bookmarkIndexer := NewBookmarkIndexer(userData)

	apps := memory.NewApplicationCatalog()
	bookmarks := memory.NewBookmarkCatalog()
	orch := NewIndexOrchestrator(appIndexer, bookmarkIndexer, apps, bookmarks, staticSettings{settings: settings})
	return orch, apps, bookmarks
}

func TestIndexOrchestrator_Rebuild(t *testing.T) {
	orch, apps, bookmarks := orchestratorFixture(t, domain.DefaultSettings())

	status := orch.Rebuild(context.Background())
	assert.Equal(t, 1, status.Applications)
	assert.Equal(t, 3, status.Bookmarks)
	assert.Equal(t, 1, apps.Len())
	assert.Equal(t, 3, bookmarks.Len())

	assert.Equal(t, status, orch.Status())
}

func TestIndexOrchestrator_PartialRebuilds(t *testing.T) {
	orch, apps, bookmarks := orchestratorFixture(t, domain.DefaultSettings())

	assert.Equal(t, 1, orch.RebuildApplications(context.Background()))
	assert.Equal(t, 0, bookmarks.Len(), "application rebuild must not touch bookmarks")

	assert.Equal(t, 3, orch.RebuildBookmarks(context.Background()))
	assert.Equal(t, 1, apps.Len())
}

func TestIndexOrchestrator_ExclusionsFromSettings(t *testing.T) {
	settings := domain.DefaultSettings()

	cfg, root := menuFixture(t)
	shortcutPath := writeShortcut(t, root, "Editor.lnk")
	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"Editor.lnk": {},
	}}
	appIndexer := NewAppIndexer(cfg, resolver, nil, nil, nil, nil)
	bookmarkIndexer := NewBookmarkIndexer(filepath.Join(t.TempDir(), "none"))

	// No target path resolves, so the shortcut's own path is effective.
	settings.SystemToolExclusions = []string{shortcutPath}

	apps := memory.NewApplicationCatalog()
	bookmarks := memory.NewBookmarkCatalog()
	orch := NewIndexOrchestrator(appIndexer, bookmarkIndexer, apps, bookmarks, staticSettings{settings: settings})

	require.Equal(t, 0, orch.RebuildApplications(context.Background()))
}

func TestIndexOrchestrator_RebuildReplacesStaleEntries(t *testing.T) {
	orch, apps, _ := orchestratorFixture(t, domain.DefaultSettings())

	apps.Replace([]domain.Application{
		{ID: "exec:startmenu:stale", Name: "Stale"},
		{ID: "exec:startmenu:stale2", Name: "Stale 2"},
	})
	require.Equal(t, 2, apps.Len())

	orch.RebuildApplications(context.Background())
	snapshot := apps.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Editor", snapshot[0].Name)
}
