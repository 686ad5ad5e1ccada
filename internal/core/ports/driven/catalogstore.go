package driven

import (
	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

// ApplicationCatalog holds the shared application index.
// Replace swaps the whole catalog atomically; Snapshot returns a clone
// so readers never observe a partially populated list.
type ApplicationCatalog interface {
	// Replace swaps in a freshly built catalog.
	Replace(apps []domain.Application)

	// Snapshot returns a copy of the current catalog.
	Snapshot() []domain.Application

	// Len returns the current catalog size.
	Len() int
}

// BookmarkCatalog holds the shared bookmark index.
type BookmarkCatalog interface {
	// Replace swaps in a freshly built catalog.
	Replace(bookmarks []domain.Bookmark)

	// Snapshot returns a copy of the current catalog.
	Snapshot() []domain.Bookmark

	// Len returns the current catalog size.
	Len() int
}

// PendingActionStore maps result ids to their concrete actions.
// Replace clears the previous query's entries before installing the
// new map: stale ids must not resolve.
type PendingActionStore interface {
	// Replace installs the actions of the most recent query.
	Replace(actions map[string]domain.PendingAction)

	// Get looks up a result id. False means the id is expired.
	Get(id string) (domain.PendingAction, bool)
}
