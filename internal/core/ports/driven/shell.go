package driven

// InputMethodService saves and restores the input-method layout around
// launcher interactions. Capture is taken before the launcher surface
// shows; Restore runs after a successful action dispatch.
type InputMethodService interface {
	// Capture returns the current layout token, false if unavailable.
	Capture() (int64, bool)

	// Restore reinstates a previously captured layout token.
	Restore(token int64)
}

// WindowService signals the surrounding launcher surface.
type WindowService interface {
	// Hide hides the launcher surface after an action dispatch.
	Hide()
}
