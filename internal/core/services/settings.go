package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService holds the live settings and persists changes through
// the backing store. Loaded once at construction; out-of-range values
// from the store are clamped rather than rejected.
type SettingsService struct {
	store driven.SettingsStore

	mu      sync.RWMutex
	current domain.Settings
}

// NewSettingsService loads settings from the store, falling back to
// defaults when the store cannot provide any.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	s := &SettingsService{store: store}
	loaded, err := store.Load()
	if err != nil {
		logger.Warn("settings load failed, using defaults: %v", err)
		loaded = domain.DefaultSettings()
	}
	s.current = sanitize(loaded)
	return s
}

// Get returns a copy of the current settings.
func (s *SettingsService) Get(_ context.Context) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies the non-nil fields of upd, validates them, persists
// the result, and returns the new settings. Invalid prefixes are
// rejected; numeric fields are clamped into range.
func (s *SettingsService) Update(_ context.Context, upd driving.SettingsUpdate) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current

	if upd.QueryDelayMS != nil {
		next.QueryDelayMS = domain.ClampQueryDelay(*upd.QueryDelayMS)
	}
	if upd.MaxResults != nil {
		next.MaxResults = domain.ClampMaxResults(*upd.MaxResults)
	}
	if upd.EnableAppResults != nil {
		next.EnableAppResults = *upd.EnableAppResults
	}
	if upd.EnableBookmarkResults != nil {
		next.EnableBookmarkResults = *upd.EnableBookmarkResults
	}
	if upd.PrefixApp != nil {
		p, ok := domain.NormalisePrefix(*upd.PrefixApp)
		if !ok {
			return domain.Settings{}, fmt.Errorf("%w: invalid app prefix %q", domain.ErrInvalidInput, *upd.PrefixApp)
		}
		next.PrefixApp = p
	}
	if upd.PrefixBookmark != nil {
		p, ok := domain.NormalisePrefix(*upd.PrefixBookmark)
		if !ok {
			return domain.Settings{}, fmt.Errorf("%w: invalid bookmark prefix %q", domain.ErrInvalidInput, *upd.PrefixBookmark)
		}
		next.PrefixBookmark = p
	}
	if upd.PrefixSearch != nil {
		p, ok := domain.NormalisePrefix(*upd.PrefixSearch)
		if !ok {
			return domain.Settings{}, fmt.Errorf("%w: invalid search prefix %q", domain.ErrInvalidInput, *upd.PrefixSearch)
		}
		next.PrefixSearch = p
	}
	if upd.SystemToolExclusions != nil {
		next.SystemToolExclusions = append([]string(nil), upd.SystemToolExclusions...)
	}
	if upd.ForceEnglishInput != nil {
		next.ForceEnglishInput = *upd.ForceEnglishInput
	}
	if upd.LaunchOnStartup != nil {
		next.LaunchOnStartup = *upd.LaunchOnStartup
	}
	if upd.DebugMode != nil {
		next.DebugMode = *upd.DebugMode
	}

	if err := s.store.Save(next); err != nil {
		return domain.Settings{}, fmt.Errorf("persisting settings: %w", err)
	}

	s.current = next
	logger.Debug("settings updated")
	return next, nil
}

func sanitize(in domain.Settings) domain.Settings {
	in.QueryDelayMS = domain.ClampQueryDelay(in.QueryDelayMS)
	in.MaxResults = domain.ClampMaxResults(in.MaxResults)
	if p, ok := domain.NormalisePrefix(in.PrefixApp); ok {
		in.PrefixApp = p
	} else {
		in.PrefixApp = domain.DefaultSettings().PrefixApp
	}
	if p, ok := domain.NormalisePrefix(in.PrefixBookmark); ok {
		in.PrefixBookmark = p
	} else {
		in.PrefixBookmark = domain.DefaultSettings().PrefixBookmark
	}
	if p, ok := domain.NormalisePrefix(in.PrefixSearch); ok {
		in.PrefixSearch = p
	} else {
		in.PrefixSearch = domain.DefaultSettings().PrefixSearch
	}
	return in
}
