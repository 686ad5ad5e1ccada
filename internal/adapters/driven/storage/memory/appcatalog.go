// Package memory provides in-memory implementations of the catalog
// and pending-action stores. Catalogs are process-lifetime state,
// replaced wholesale on reindex and cloned on read so queries never
// observe a partially populated list.
package memory

import (
	"sync"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure ApplicationCatalog implements the interface.
var _ driven.ApplicationCatalog = (*ApplicationCatalog)(nil)

// ApplicationCatalog is an in-memory implementation of
// driven.ApplicationCatalog.
type ApplicationCatalog struct {
	mu   sync.RWMutex
	apps []domain.Application
}

// NewApplicationCatalog creates an empty application catalog.
func NewApplicationCatalog() *ApplicationCatalog {
	return &ApplicationCatalog{}
}

// Replace swaps in a freshly built catalog.
func (c *ApplicationCatalog) Replace(apps []domain.Application) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apps = apps
}

// Snapshot returns a copy of the current catalog.
func (c *ApplicationCatalog) Snapshot() []domain.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]domain.Application, len(c.apps))
	copy(snapshot, c.apps)
	return snapshot
}

// Len returns the current catalog size.
func (c *ApplicationCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.apps)
}
