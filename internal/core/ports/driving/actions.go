package driving

import "context"

// ActionService resolves a search result id into a concrete OS action.
type ActionService interface {
	// Execute dispatches the pending action recorded for resultID.
	// Returns domain.ErrResultExpired when the id belongs to a
	// superseded query. Elevated requests an elevated launch and is
	// only meaningful for direct-executable applications.
	Execute(ctx context.Context, resultID string, elevated bool) error

	// CaptureInputState saves the current input-method layout so the
	// next successful dispatch can restore it. Called before the
	// launcher surface shows.
	CaptureInputState()
}
