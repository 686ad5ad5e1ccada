// Package tui provides the interactive launcher surface: a query input
// over a live-updating ranked result list.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
)

// queryScheduled fires when the debounce delay for one input revision
// has elapsed.
type queryScheduled struct {
	revision int
}

// queryCompleted carries the results of one executed query.
type queryCompleted struct {
	revision int
	results  []domain.SearchResult
	err      error
}

// launchCompleted carries the outcome of a dispatch.
type launchCompleted struct {
	err error
}

// reindexCompleted carries the catalog sizes after a rebuild.
type reindexCompleted struct {
	status driving.IndexStatus
}

// Model is the launcher TUI model.
type Model struct {
	styles *Styles
	input  textinput.Model

	query    driving.QueryService
	action   driving.ActionService
	index    driving.IndexService
	settings driving.SettingsService

	ctx      context.Context
	mode     string
	results  []domain.SearchResult
	selected int
	revision int
	status   string
	err      error
	width    int
	height   int
}

// NewModel creates a launcher model. The index service is optional;
// without it the reindex key is inert.
func NewModel(
	query driving.QueryService,
	action driving.ActionService,
	index driving.IndexService,
	settings driving.SettingsService,
	mode string,
) *Model {
	input := textinput.New()
	input.Placeholder = "Type to search applications and bookmarks"
	input.Prompt = "> "
	input.Focus()

	return &Model{
		styles:   DefaultStyles(),
		input:    input,
		query:    query,
		action:   action,
		index:    index,
		settings: settings,
		ctx:      context.Background(),
		mode:     mode,
		width:    80,
		height:   24,
	}
}

// WithContext sets the context used for service calls.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Init initialises the model. The input-method layout is captured
// here, before the first frame renders, so a launch can restore it.
func (m *Model) Init() tea.Cmd {
	if m.action != nil {
		m.action.CaptureInputState()
	}
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case queryScheduled:
		// Only the latest revision runs; earlier ticks are stale.
		if msg.revision != m.revision {
			return m, nil
		}
		return m, m.runQuery(msg.revision)

	case queryCompleted:
		if msg.revision != m.revision {
			return m, nil
		}
		m.err = msg.err
		if msg.err == nil {
			m.results = msg.results
			if m.selected >= len(m.results) {
				m.selected = 0
			}
		}
		return m, nil

	case launchCompleted:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, tea.Quit

	case reindexCompleted:
		m.status = fmt.Sprintf("indexed %d applications, %d bookmarks",
			msg.status.Applications, msg.status.Bookmarks)
		return m, m.scheduleQuery()
	}

	return m, m.forwardToInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.selected < len(m.results)-1 {
			m.selected++
		}
		return m, nil

	case tea.KeyEnter:
		return m, m.launchSelected(false)

	case tea.KeyCtrlE:
		return m, m.launchSelected(true)

	case tea.KeyCtrlR:
		return m, m.runReindex()
	}

	return m, m.forwardToInput(msg)
}

// forwardToInput feeds the message to the text input and schedules a
// query when the text changed.
func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		return tea.Batch(cmd, m.scheduleQuery())
	}
	return cmd
}

// scheduleQuery bumps the revision and starts the debounce timer for
// it. Older timers resolve to stale revisions and are dropped.
func (m *Model) scheduleQuery() tea.Cmd {
	m.revision++
	revision := m.revision
	delay := time.Duration(m.settings.Get(m.ctx).QueryDelayMS) * time.Millisecond

	return tea.Tick(delay, func(time.Time) tea.Msg {
		return queryScheduled{revision: revision}
	})
}

func (m *Model) runQuery(revision int) tea.Cmd {
	text := m.input.Value()
	return func() tea.Msg {
		results, err := m.query.Query(m.ctx, text, m.mode)
		return queryCompleted{revision: revision, results: results, err: err}
	}
}

func (m *Model) launchSelected(elevated bool) tea.Cmd {
	if m.selected >= len(m.results) {
		return nil
	}
	id := m.results[m.selected].ID
	return func() tea.Msg {
		return launchCompleted{err: m.action.Execute(m.ctx, id, elevated)}
	}
}

func (m *Model) runReindex() tea.Cmd {
	if m.index == nil {
		return nil
	}
	m.status = "reindexing..."
	return func() tea.Msg {
		return reindexCompleted{status: m.index.Rebuild(m.ctx)}
	}
}

// View renders the launcher surface.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.InputField.Width(m.width - 4).Render(m.input.View()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	visible := m.height - 8
	if visible < 1 {
		visible = 1
	}
	for i, result := range m.results {
		if i >= visible {
			break
		}
		line := result.Title
		if result.Subtitle != "" {
			line += "  " + m.styles.Muted.Render(result.Subtitle)
		}
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render("▸ " + result.Title))
			if result.Subtitle != "" {
				b.WriteString("  " + m.styles.Muted.Render(result.Subtitle))
			}
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Muted.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("enter launch · ctrl+e elevated · ctrl+r reindex · esc quit"))
	return b.String()
}

// Run starts the launcher TUI and blocks until the user quits or a
// result is launched.
func Run(ctx context.Context, model *Model) error {
	program := tea.NewProgram(model.WithContext(ctx), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
