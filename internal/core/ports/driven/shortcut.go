package driven

import "context"

// Shortcut is the metadata resolved from a shortcut file.
type Shortcut struct {
	// TargetPath is the resolved launch target, possibly empty.
	TargetPath string

	// Arguments are the saved launch arguments.
	Arguments string

	// WorkingDir is the saved working directory.
	WorkingDir string

	// Description is the shortcut's human description.
	Description string

	// IconPath hints where to render the icon from.
	IconPath string

	// IconIndex selects an icon within IconPath.
	IconIndex int
}

// ShortcutResolver resolves a shortcut file to its target metadata.
// Returns domain.ErrUnresolvable when the file cannot be read as a
// shortcut; the indexer skips that item.
type ShortcutResolver interface {
	// Resolve reads the shortcut at path.
	Resolve(ctx context.Context, path string) (*Shortcut, error)
}
