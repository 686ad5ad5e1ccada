package memory

import (
	"sync"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure BookmarkCatalog implements the interface.
var _ driven.BookmarkCatalog = (*BookmarkCatalog)(nil)

// BookmarkCatalog is an in-memory implementation of
// driven.BookmarkCatalog.
type BookmarkCatalog struct {
	mu        sync.RWMutex
	bookmarks []domain.Bookmark
}

// NewBookmarkCatalog creates an empty bookmark catalog.
func NewBookmarkCatalog() *BookmarkCatalog {
	return &BookmarkCatalog{}
}

// Replace swaps in a freshly built catalog.
func (c *BookmarkCatalog) Replace(bookmarks []domain.Bookmark) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookmarks = bookmarks
}

// Snapshot returns a copy of the current catalog.
func (c *BookmarkCatalog) Snapshot() []domain.Bookmark {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]domain.Bookmark, len(c.bookmarks))
	copy(snapshot, c.bookmarks)
	return snapshot
}

// Len returns the current catalog size.
func (c *BookmarkCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bookmarks)
}
