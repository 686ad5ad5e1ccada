package driven

import (
	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

// SettingsStore persists launcher settings.
// Backed by a TOML file in the launcha config directory.
type SettingsStore interface {
	// Load reads settings, returning defaults when none are stored.
	Load() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error
}
