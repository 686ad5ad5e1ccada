package driving

import (
	"context"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

// SettingsUpdate carries partial settings changes. Nil fields are
// left unchanged.
type SettingsUpdate struct {
	QueryDelayMS          *int
	MaxResults            *int
	EnableAppResults      *bool
	EnableBookmarkResults *bool
	PrefixApp             *string
	PrefixBookmark        *string
	PrefixSearch          *string
	SystemToolExclusions  []string
	ForceEnglishInput     *bool
	LaunchOnStartup       *bool
	DebugMode             *bool
}

// SettingsService reads and updates launcher settings.
type SettingsService interface {
	// Get returns the current settings.
	Get(ctx context.Context) domain.Settings

	// Update validates, applies and persists a partial update,
	// returning the resulting settings.
	Update(ctx context.Context, update SettingsUpdate) (domain.Settings, error)
}
