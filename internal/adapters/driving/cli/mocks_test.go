package cli

import (
	"context"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

type stubQueryService struct {
	results  []domain.SearchResult
	err      error
	lastText string
	lastMode string
}

func (s *stubQueryService) Query(_ context.Context, text, modeHint string) ([]domain.SearchResult, error) {
	s.lastText = text
	s.lastMode = modeHint
	return s.results, s.err
}

type stubActionService struct {
	err          error
	lastID       string
	lastElevated bool
}

func (s *stubActionService) Execute(_ context.Context, resultID string, elevated bool) error {
	s.lastID = resultID
	s.lastElevated = elevated
	return s.err
}

func (s *stubActionService) CaptureInputState() {}

type stubIndexService struct {
	apps      int
	bookmarks int
}

func (s *stubIndexService) Rebuild(context.Context) driving.IndexStatus {
	return driving.IndexStatus{Applications: s.apps, Bookmarks: s.bookmarks}
}

func (s *stubIndexService) RebuildApplications(context.Context) int { return s.apps }
func (s *stubIndexService) RebuildBookmarks(context.Context) int    { return s.bookmarks }

func (s *stubIndexService) Status() driving.IndexStatus {
	return driving.IndexStatus{Applications: s.apps, Bookmarks: s.bookmarks}
}

type stubSettingsService struct {
	current    domain.Settings
	updateErr  error
	lastUpdate driving.SettingsUpdate
}

func (s *stubSettingsService) Get(context.Context) domain.Settings { return s.current }

func (s *stubSettingsService) Update(_ context.Context, update driving.SettingsUpdate) (domain.Settings, error) {
	s.lastUpdate = update
	if s.updateErr != nil {
		return domain.Settings{}, s.updateErr
	}
	return s.current, nil
}

// setupTestServices installs stub services into the package-level
// service variables and returns a cleanup that restores the originals.
func setupTestServices() func() {
	oldQuery := queryService
	oldAction := actionService
	oldIndex := indexService
	oldSettings := settingsService

	queryService = &stubQueryService{
		results: []domain.SearchResult{
			{
				ID:       "app-term",
				Title:    "Terminal",
				Subtitle: "/usr/bin/terminal",
				Score:    1500,
				Action:   domain.ActionApp,
			},
		},
	}
	actionService = &stubActionService{}
	indexService = &stubIndexService{apps: 3, bookmarks: 5}
	settingsService = &stubSettingsService{current: domain.DefaultSettings()}

	return func() {
		queryService = oldQuery
		actionService = oldAction
		indexService = oldIndex
		settingsService = oldSettings
	}
}
