package driven

import "context"

// IconRenderer renders a file or handle into an encoded icon image.
// A miss (no icon available) returns nil bytes and nil error; the
// core treats it as "no icon", never as a failure.
type IconRenderer interface {
	// Render produces encoded image bytes for the icon at path/index.
	Render(ctx context.Context, path string, index int) ([]byte, error)
}
