package domain

import "strings"

// FolderSeparator joins breadcrumb segments in a bookmark folder path.
const FolderSeparator = " / "

// Bookmark is one browser bookmark in the bookmark catalog.
// Only http/https bookmarks are retained at ingestion.
type Bookmark struct {
	// ID is derived from the bookmark's native GUID or id when present,
	// or a content hash of profile+URL otherwise.
	ID string

	// Title is the bookmark title, non-empty after trimming.
	Title string

	// URL always starts with http:// or https://.
	URL string

	// FolderPath is the slash-joined breadcrumb, empty for root items.
	FolderPath string

	// Keywords are the searchable fields: title, URL, folder path,
	// folder segments and profile label.
	Keywords []string
}

// Subtitle returns the display subtitle for a search result row.
func (b Bookmark) Subtitle() string {
	if b.FolderPath != "" {
		return "Bookmarks · " + b.FolderPath + " · " + b.URL
	}
	return "Bookmarks · " + b.URL
}

// IsWebURL reports whether a URL uses a scheme the launcher will open.
func IsWebURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
