package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// Ensure ActionService implements the interface.
var _ driving.ActionService = (*ActionService)(nil)

// ActionService resolves result ids from the pending cache and
// dispatches them to the launch primitives.
type ActionService struct {
	pending   driven.PendingActionStore
	launcher  driven.ProcessLauncher
	activator driven.PackageActivator
	opener    driven.URLOpener
	ime       driven.InputMethodService
	window    driven.WindowService

	mu       sync.Mutex
	savedIME *int64
}

// NewActionService creates an action service. The input-method and
// window services are optional (can be nil).
func NewActionService(
	pending driven.PendingActionStore,
	launcher driven.ProcessLauncher,
	activator driven.PackageActivator,
	opener driven.URLOpener,
	ime driven.InputMethodService,
	window driven.WindowService,
) *ActionService {
	return &ActionService{
		pending:   pending,
		launcher:  launcher,
		activator: activator,
		opener:    opener,
		ime:       ime,
		window:    window,
	}
}

// CaptureInputState saves the current input-method layout so it can be
// restored after the next successful dispatch. Called before the
// launcher surface shows.
func (s *ActionService) CaptureInputState() {
	if s.ime == nil {
		return
	}
	token, ok := s.ime.Capture()
	if !ok {
		return
	}
	s.mu.Lock()
	s.savedIME = &token
	s.mu.Unlock()
}

// Execute dispatches the pending action recorded for resultID.
// A miss means the id belongs to a superseded query.
func (s *ActionService) Execute(ctx context.Context, resultID string, elevated bool) error {
	action, ok := s.pending.Get(resultID)
	if !ok {
		logger.Debug("result id %q not pending", resultID)
		return domain.ErrResultExpired
	}

	var err error
	switch action.Kind {
	case domain.ActionApp:
		err = s.launchExecutable(ctx, action.App, elevated)
	case domain.ActionPackaged:
		err = s.activatePackaged(ctx, action.App)
	case domain.ActionBookmark:
		err = s.opener.OpenURL(ctx, action.Bookmark.URL)
	case domain.ActionURL, domain.ActionSearch:
		err = s.opener.OpenURL(ctx, action.URL)
	default:
		err = fmt.Errorf("%w: unknown action kind %q", domain.ErrInvalidInput, action.Kind)
	}
	if err != nil {
		return err
	}

	s.restoreInputState()
	if s.window != nil {
		s.window.Hide()
	}
	return nil
}

// launchExecutable tries the primary path first; on failure it retries
// via the alternate source path with the saved arguments and working
// directory, surfacing the primary error if the retry also fails.
func (s *ActionService) launchExecutable(ctx context.Context, app *domain.Application, elevated bool) error {
	primaryErr := s.launchPrimary(ctx, app.Path, elevated)
	if primaryErr == nil {
		return nil
	}

	if app.SourcePath == "" {
		return primaryErr
	}

	if err := s.launchFromSource(ctx, app, elevated); err != nil {
		logger.Debug("source-path retry failed for %s: %v", app.ID, err)
		return primaryErr
	}
	return nil
}

func (s *ActionService) launchPrimary(ctx context.Context, path string, elevated bool) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrTargetMissing, path)
	}
	return s.launcher.Launch(ctx, driven.LaunchSpec{
		Target:   path,
		Elevated: elevated,
	})
}

func (s *ActionService) launchFromSource(ctx context.Context, app *domain.Application, elevated bool) error {
	source := strings.Trim(strings.TrimSpace(app.SourcePath), `"'`)
	if source == "" {
		return fmt.Errorf("%w: empty source path", domain.ErrInvalidInput)
	}

	// A URI-style source that is not a local file is handed to the
	// URL opener instead of the process launcher.
	if strings.Contains(source, "://") {
		if _, err := os.Stat(source); err != nil {
			return s.opener.OpenURL(ctx, source)
		}
	}

	return s.launcher.Launch(ctx, driven.LaunchSpec{
		Target:     source,
		Arguments:  strings.TrimSpace(app.Arguments),
		WorkingDir: strings.TrimSpace(app.WorkingDir),
		Elevated:   elevated,
	})
}

func (s *ActionService) activatePackaged(ctx context.Context, app *domain.Application) error {
	if err := s.activator.Activate(ctx, app.Path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrActivationFailed, err)
	}
	return nil
}

func (s *ActionService) restoreInputState() {
	if s.ime == nil {
		return
	}
	s.mu.Lock()
	saved := s.savedIME
	s.savedIME = nil
	s.mu.Unlock()
	if saved != nil {
		s.ime.Restore(*saved)
	}
}
