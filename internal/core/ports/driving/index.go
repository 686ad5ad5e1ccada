package driving

import "context"

// IndexStatus reports the current catalog sizes.
type IndexStatus struct {
	// Applications is the application catalog size.
	Applications int

	// Bookmarks is the bookmark catalog size.
	Bookmarks int
}

// IndexService rebuilds the shared catalogs.
// Rebuilds are full, not incremental; overlapping rebuilds are
// idempotent with last-one-to-finish-wins semantics.
type IndexService interface {
	// Rebuild rebuilds both catalogs concurrently and returns once
	// both swaps have completed.
	Rebuild(ctx context.Context) IndexStatus

	// RebuildApplications rebuilds only the application catalog.
	RebuildApplications(ctx context.Context) int

	// RebuildBookmarks rebuilds only the bookmark catalog.
	RebuildBookmarks(ctx context.Context) int

	// Status returns the current catalog sizes.
	Status() IndexStatus
}
