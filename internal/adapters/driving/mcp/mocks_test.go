package mcp

import (
	"context"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	results []domain.SearchResult
	err     error
	text    string
	mode    string
}

func (m *mockQueryService) Query(_ context.Context, text, mode string) ([]domain.SearchResult, error) {
	m.text = text
	m.mode = mode
	return m.results, m.err
}

// mockActionService is a mock implementation of driving.ActionService.
type mockActionService struct {
	err      error
	resultID string
	elevated bool
}

func (m *mockActionService) Execute(_ context.Context, resultID string, elevated bool) error {
	m.resultID = resultID
	m.elevated = elevated
	return m.err
}

func (m *mockActionService) CaptureInputState() {}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	status   driving.IndexStatus
	rebuilds []string
}

func (m *mockIndexService) Rebuild(context.Context) driving.IndexStatus {
	m.rebuilds = append(m.rebuilds, "all")
	return m.status
}

func (m *mockIndexService) RebuildApplications(context.Context) int {
	m.rebuilds = append(m.rebuilds, "applications")
	return m.status.Applications
}

func (m *mockIndexService) RebuildBookmarks(context.Context) int {
	m.rebuilds = append(m.rebuilds, "bookmarks")
	return m.status.Bookmarks
}

func (m *mockIndexService) Status() driving.IndexStatus {
	return m.status
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
}

func (m *mockSettingsService) Get(context.Context) domain.Settings {
	return m.settings
}

func (m *mockSettingsService) Update(_ context.Context, _ driving.SettingsUpdate) (domain.Settings, error) {
	return m.settings, nil
}
