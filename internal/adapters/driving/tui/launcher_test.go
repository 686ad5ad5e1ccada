package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

type stubQuery struct {
	results []domain.SearchResult
	err     error
	calls   int
}

func (s *stubQuery) Query(context.Context, string, string) ([]domain.SearchResult, error) {
	s.calls++
	return s.results, s.err
}

type stubAction struct {
	resultID string
	elevated bool
	err      error
	captures int
}

func (s *stubAction) Execute(_ context.Context, resultID string, elevated bool) error {
	s.resultID = resultID
	s.elevated = elevated
	return s.err
}

func (s *stubAction) CaptureInputState() {
	s.captures++
}

type stubIndex struct {
	status driving.IndexStatus
}

func (s *stubIndex) Rebuild(context.Context) driving.IndexStatus { return s.status }
func (s *stubIndex) RebuildApplications(context.Context) int     { return s.status.Applications }
func (s *stubIndex) RebuildBookmarks(context.Context) int        { return s.status.Bookmarks }
func (s *stubIndex) Status() driving.IndexStatus                 { return s.status }

type stubSettings struct{}

func (stubSettings) Get(context.Context) domain.Settings { return domain.DefaultSettings() }
func (stubSettings) Update(context.Context, driving.SettingsUpdate) (domain.Settings, error) {
	return domain.DefaultSettings(), nil
}

func testModel(query *stubQuery, action *stubAction) *Model {
	return NewModel(query, action, &stubIndex{}, stubSettings{}, "")
}

func typeRune(m *Model, r rune) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestModel_InitCapturesInputState(t *testing.T) {
	action := &stubAction{}
	m := testModel(&stubQuery{}, action)

	m.Init()

	assert.Equal(t, 1, action.captures, "input layout must be captured before the first frame")
}

func TestModel_TypingSchedulesDebouncedQuery(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})

	updated, cmd := typeRune(m, 'f')
	require.NotNil(t, cmd, "input change must schedule a query")

	model := updated.(*Model)
	assert.Equal(t, 1, model.revision)
	assert.Equal(t, "f", model.input.Value())
}

func TestModel_StaleRevisionsDropped(t *testing.T) {
	query := &stubQuery{}
	m := testModel(query, &stubAction{})
	m.revision = 5

	_, cmd := m.Update(queryScheduled{revision: 3})
	assert.Nil(t, cmd, "stale tick must not query")

	_, cmd = m.Update(queryScheduled{revision: 5})
	require.NotNil(t, cmd)
	msg := cmd()
	completed, ok := msg.(queryCompleted)
	require.True(t, ok)
	assert.Equal(t, 5, completed.revision)
	assert.Equal(t, 1, query.calls)
}

func TestModel_StaleResultsDropped(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})
	m.revision = 2
	m.results = []domain.SearchResult{{ID: "app-1", Title: "Keep"}}

	m.Update(queryCompleted{revision: 1, results: []domain.SearchResult{{ID: "old"}}})
	assert.Equal(t, "app-1", m.results[0].ID)

	m.Update(queryCompleted{revision: 2, results: []domain.SearchResult{{ID: "new", Title: "New"}}})
	assert.Equal(t, "new", m.results[0].ID)
}

func TestModel_SelectionStaysInBounds(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})
	m.results = []domain.SearchResult{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.selected)
}

func TestModel_EnterLaunchesSelection(t *testing.T) {
	action := &stubAction{}
	m := testModel(&stubQuery{}, action)
	m.results = []domain.SearchResult{
		{ID: "app-1", Title: "A"},
		{ID: "bookmark-2", Title: "B"},
	}
	m.selected = 1

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(launchCompleted)
	require.True(t, ok)
	assert.NoError(t, completed.err)
	assert.Equal(t, "bookmark-2", action.resultID)
	assert.False(t, action.elevated)
}

func TestModel_CtrlELaunchesElevated(t *testing.T) {
	action := &stubAction{}
	m := testModel(&stubQuery{}, action)
	m.results = []domain.SearchResult{{ID: "app-1", Title: "A"}}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, action.elevated)
}

func TestModel_SuccessfulLaunchQuits(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})

	_, cmd := m.Update(launchCompleted{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_FailedLaunchShowsError(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})

	_, cmd := m.Update(launchCompleted{err: errors.New("expired")})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "expired")
}

func TestModel_ReindexUpdatesStatus(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})

	_, cmd := m.Update(reindexCompleted{status: driving.IndexStatus{Applications: 4, Bookmarks: 9}})
	require.NotNil(t, cmd, "reindex completion must refresh the query")
	assert.Contains(t, m.View(), "indexed 4 applications, 9 bookmarks")
}

func TestModel_EscQuits(t *testing.T) {
	m := testModel(&stubQuery{}, &stubAction{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
