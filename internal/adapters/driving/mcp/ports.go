package mcp

import (
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query ranks catalog entries against text queries.
	Query driving.QueryService

	// Action resolves result ids into launches.
	Action driving.ActionService

	// Index rebuilds the catalogs.
	Index driving.IndexService

	// Settings reads launcher settings.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Action == nil {
		return ErrMissingActionService
	}
	// Index and Settings are optional
	return nil
}
