package domain

import "strings"

// AppKind distinguishes the two launch mechanisms for an application.
type AppKind string

// Available application kinds.
const (
	// AppKindExecutable launches via a direct filesystem path.
	AppKindExecutable AppKind = "executable"

	// AppKindPackaged activates a packaged app by its app identity string.
	AppKindPackaged AppKind = "packaged"
)

// IsValid returns true if the application kind is recognised.
func (k AppKind) IsValid() bool {
	switch k {
	case AppKindExecutable, AppKindPackaged:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k AppKind) String() string {
	return string(k)
}

// Application is one launchable unit in the application catalog.
// Entries are built fresh on every index rebuild and never mutated;
// the whole catalog is swapped at once.
type Application struct {
	// ID is derived from source + normalised path and is reproducible
	// for the same underlying OS object across rebuilds, so pending
	// action references stay valid within a session.
	ID string

	// Name is the display name.
	Name string

	// Path is the primary launch target. For packaged apps this holds
	// the app identity string instead of a filesystem path.
	Path string

	// SourcePath is an optional more authoritative alternate target,
	// e.g. the resolved executable behind a shortcut file.
	SourcePath string

	// Arguments are launch arguments saved from shortcut resolution.
	Arguments string

	// WorkingDir is the working directory saved from shortcut resolution.
	WorkingDir string

	// Kind selects the launch mechanism.
	Kind AppKind

	// IconData is an opaque encoded icon image, possibly empty.
	IconData string

	// Description is an optional human description.
	Description string

	// Keywords are the searchable fields: name, path fragments,
	// description and locale variants. Deduplicated, case-preserving.
	Keywords []string
}

// EffectivePath returns the path used for dedup and exclusion checks:
// the source path when present, the primary path otherwise.
func (a Application) EffectivePath() string {
	if a.SourcePath != "" {
		return a.SourcePath
	}
	return a.Path
}

// DedupKey identifies an application for the catalog dedup pass.
// Two entries with the same kind and effective path are duplicates;
// the first one enumerated wins.
func (a Application) DedupKey() string {
	return string(a.Kind) + ":" + strings.ToLower(a.EffectivePath())
}

// Subtitle returns the display subtitle for a search result row:
// description, else source path, else primary path.
func (a Application) Subtitle() string {
	if a.Description != "" {
		return a.Description
	}
	if a.SourcePath != "" {
		return a.SourcePath
	}
	return a.Path
}
