package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

func TestApplicationCatalog_ReplaceAndSnapshot(t *testing.T) {
	catalog := NewApplicationCatalog()
	assert.Equal(t, 0, catalog.Len())

	apps := []domain.Application{
		{ID: "app-1", Name: "Editor"},
		{ID: "app-2", Name: "Terminal"},
	}
	catalog.Replace(apps)

	snapshot := catalog.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, 2, catalog.Len())

	// Mutating the snapshot must not affect the shared catalog.
	snapshot[0].Name = "Mutated"
	assert.Equal(t, "Editor", catalog.Snapshot()[0].Name)
}

func TestApplicationCatalog_ReplaceIsWholesale(t *testing.T) {
	catalog := NewApplicationCatalog()
	catalog.Replace([]domain.Application{{ID: "old"}})
	catalog.Replace([]domain.Application{{ID: "new-1"}, {ID: "new-2"}})

	snapshot := catalog.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "new-1", snapshot[0].ID)
}

func TestBookmarkCatalog_ReplaceAndSnapshot(t *testing.T) {
	catalog := NewBookmarkCatalog()
	catalog.Replace([]domain.Bookmark{{ID: "b-1", Title: "Docs"}})

	snapshot := catalog.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Docs", snapshot[0].Title)

	snapshot[0].Title = "Mutated"
	assert.Equal(t, "Docs", catalog.Snapshot()[0].Title)
}

func TestPendingActionStore_ReplaceClearsStaleIDs(t *testing.T) {
	store := NewPendingActionStore()
	store.Replace(map[string]domain.PendingAction{
		"url-0": domain.PendingURL("http://example.com"),
	})

	_, ok := store.Get("url-0")
	require.True(t, ok)

	store.Replace(map[string]domain.PendingAction{
		"search-0": domain.PendingSearch("https://google.com/search?q=x"),
	})

	_, ok = store.Get("url-0")
	assert.False(t, ok, "stale id from the previous query must not resolve")

	action, ok := store.Get("search-0")
	require.True(t, ok)
	assert.Equal(t, domain.ActionSearch, action.Kind)
}

func TestPendingActionStore_GetDoesNotConsume(t *testing.T) {
	store := NewPendingActionStore()
	store.Replace(map[string]domain.PendingAction{
		"app-1": domain.PendingApp(domain.Application{ID: "1", Kind: domain.AppKindExecutable}),
	})

	_, ok := store.Get("app-1")
	require.True(t, ok)
	_, ok = store.Get("app-1")
	assert.True(t, ok, "reads do not remove entries; the next query's Replace does")
}

func TestCatalogs_ConcurrentReadersAndWriters(t *testing.T) {
	catalog := NewApplicationCatalog()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.Replace([]domain.Application{{ID: "a"}, {ID: "b"}})
		}()
		go func() {
			defer wg.Done()
			snapshot := catalog.Snapshot()
			// Readers see the old or new catalog entirely, never partial.
			assert.True(t, len(snapshot) == 0 || len(snapshot) == 2)
		}()
	}
	wg.Wait()
}
