package domain

import "strings"

// QueryMode restricts which candidate sources a query considers.
type QueryMode string

// Available query modes.
const (
	// QueryModeAll matches applications, bookmarks and web search.
	QueryModeAll QueryMode = "all"

	// QueryModeBookmark matches bookmarks only.
	QueryModeBookmark QueryMode = "bookmark"

	// QueryModeApplication matches applications only.
	QueryModeApplication QueryMode = "application"

	// QueryModeSearch produces only the web-search entry.
	QueryModeSearch QueryMode = "search"
)

// ParseQueryMode maps a free-text mode hint onto a QueryMode.
// Unrecognised hints default to QueryModeAll.
func ParseQueryMode(hint string) QueryMode {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "bookmark", "bookmarks", "b":
		return QueryModeBookmark
	case "app", "apps", "application", "r":
		return QueryModeApplication
	case "search", "s":
		return QueryModeSearch
	default:
		return QueryModeAll
	}
}

// AllowsBookmarks returns true if bookmark candidates are considered.
func (m QueryMode) AllowsBookmarks() bool {
	return m == QueryModeAll || m == QueryModeBookmark
}

// AllowsApplications returns true if application candidates are considered.
func (m QueryMode) AllowsApplications() bool {
	return m == QueryModeAll || m == QueryModeApplication
}

// AllowsWebSearch returns true if the web-search entry is appended.
func (m QueryMode) AllowsWebSearch() bool {
	return m == QueryModeAll || m == QueryModeSearch
}

// String returns the string representation.
func (m QueryMode) String() string {
	return string(m)
}

// ActionKind tags a search result with the action it resolves to.
type ActionKind string

// Available action kinds.
const (
	// ActionApp launches a directly executable application.
	ActionApp ActionKind = "app"

	// ActionPackaged activates a packaged application.
	ActionPackaged ActionKind = "packaged"

	// ActionBookmark opens a bookmarked URL.
	ActionBookmark ActionKind = "bookmark"

	// ActionURL opens the query text itself as a URL.
	ActionURL ActionKind = "url"

	// ActionSearch opens a constructed web-search URL.
	ActionSearch ActionKind = "search"
)

// SearchResult is one ranked hit produced per query. Never persisted.
type SearchResult struct {
	// ID keys the result into the pending-action cache.
	ID string

	// Title is the primary display line.
	Title string

	// Subtitle is the secondary display line.
	Subtitle string

	// IconData is an opaque encoded icon image, possibly empty.
	IconData string

	// Score orders results, higher first.
	Score int

	// Action tags the kind of action this result resolves to.
	Action ActionKind
}

// PendingAction is the tagged union a result id resolves to.
// Exactly one variant is populated, selected by Kind.
type PendingAction struct {
	// Kind selects the populated variant.
	Kind ActionKind

	// App is set for ActionApp and ActionPackaged.
	App *Application

	// Bookmark is set for ActionBookmark.
	Bookmark *Bookmark

	// URL is set for ActionURL and ActionSearch.
	URL string
}

// PendingApp wraps an application reference as a pending action.
func PendingApp(app Application) PendingAction {
	kind := ActionApp
	if app.Kind == AppKindPackaged {
		kind = ActionPackaged
	}
	return PendingAction{Kind: kind, App: &app}
}

// PendingBookmark wraps a bookmark reference as a pending action.
func PendingBookmark(b Bookmark) PendingAction {
	return PendingAction{Kind: ActionBookmark, Bookmark: &b}
}

// PendingURL wraps a raw URL as a pending action.
func PendingURL(url string) PendingAction {
	return PendingAction{Kind: ActionURL, URL: url}
}

// PendingSearch wraps a constructed search URL as a pending action.
func PendingSearch(url string) PendingAction {
	return PendingAction{Kind: ActionSearch, URL: url}
}
