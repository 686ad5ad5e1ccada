package services

import (
	"context"
	"crypto/sha1" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// bookmarksFileName is the per-profile bookmarks store file name.
const bookmarksFileName = "Bookmarks"

// Fixed display labels for the named bookmark roots.
var rootDisplayLabels = map[string]string{
	"bookmark_bar": "Bookmarks Bar",
	"other":        "Other Bookmarks",
	"synced":       "Synced",
}

// bookmarkNode is the JSON shape of one node in a profile's bookmark
// tree. Folders carry children; url nodes carry a URL.
type bookmarkNode struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	GUID     string         `json:"guid"`
	ID       string         `json:"id"`
	Children []bookmarkNode `json:"children"`
}

type bookmarksFile struct {
	Roots map[string]bookmarkNode `json:"roots"`
}

// BookmarkIndexer builds the bookmark catalog from local browser
// profiles. Read or parse failures are per-profile: that profile
// contributes nothing and siblings are unaffected.
type BookmarkIndexer struct {
	// userDataDir is the browser user-data directory containing
	// profile subdirectories.
	userDataDir string
}

// NewBookmarkIndexer creates a bookmark indexer rooted at userDataDir.
// An empty dir falls back to the default local browser location.
func NewBookmarkIndexer(userDataDir string) *BookmarkIndexer {
	if userDataDir == "" {
		userDataDir = defaultUserDataDir()
	}
	return &BookmarkIndexer{userDataDir: userDataDir}
}

func defaultUserDataDir() string {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		return ""
	}
	return filepath.Join(local, "Google", "Chrome", "User Data")
}

// ProfileDirs returns the profile directories that contain a
// bookmarks file.
func (ix *BookmarkIndexer) ProfileDirs() []string {
	if ix.userDataDir == "" {
		return nil
	}
	entries, err := os.ReadDir(ix.userDataDir)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(ix.userDataDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, bookmarksFileName)); err == nil {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// BookmarkFiles returns the bookmarks file paths of all profiles,
// for change watching.
func (ix *BookmarkIndexer) BookmarkFiles() []string {
	dirs := ix.ProfileDirs()
	files := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		files = append(files, filepath.Join(dir, bookmarksFileName))
	}
	return files
}

// Load walks every discovered profile's bookmark tree and returns the
// retained web bookmarks. Never fails.
func (ix *BookmarkIndexer) Load(ctx context.Context) []domain.Bookmark {
	logger.Section("Bookmark Index")

	var all []domain.Bookmark
	for _, dir := range ix.ProfileDirs() {
		if ctx.Err() != nil {
			break
		}
		profile := filepath.Base(dir)
		path := filepath.Join(dir, bookmarksFileName)

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("failed to read bookmarks %s: %v", path, err)
			continue
		}

		var file bookmarksFile
		if err := json.Unmarshal(data, &file); err != nil {
			logger.Warn("failed to parse bookmarks %s: %v", path, err)
			continue
		}

		all = append(all, collectFromRoots(file.Roots, profile)...)
	}

	logger.Info("bookmark catalog: %d entries", len(all))
	return all
}

// collectFromRoots walks each named root with a fresh breadcrumb
// stack seeded with the profile label and the root's display label.
// Roots are visited in sorted key order so the catalog order is
// stable across runs.
func collectFromRoots(roots map[string]bookmarkNode, profile string) []domain.Bookmark {
	keys := make([]string, 0, len(roots))
	for key := range roots {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var acc []domain.Bookmark
	for _, key := range keys {
		node := roots[key]
		stack := []string{profile}
		if label, ok := rootDisplayLabels[key]; ok {
			stack = append(stack, label)
		}

		if len(node.Children) > 0 {
			for i := range node.Children {
				collectNode(&node.Children[i], profile, &stack, &acc)
			}
		} else {
			collectNode(&node, profile, &stack, &acc)
		}
	}
	return acc
}

// collectNode is the depth-first walk: folders push their trimmed name
// onto the breadcrumb stack and pop it on return; url leaves are
// emitted when title, URL and scheme qualify.
func collectNode(node *bookmarkNode, profile string, stack *[]string, acc *[]domain.Bookmark) {
	switch node.Type {
	case "folder":
		pushed := false
		if name := strings.TrimSpace(node.Name); name != "" {
			*stack = append(*stack, name)
			pushed = true
		}
		for i := range node.Children {
			collectNode(&node.Children[i], profile, stack, acc)
		}
		if pushed {
			*stack = (*stack)[:len(*stack)-1]
		}

	case "url":
		title := strings.TrimSpace(node.Name)
		url := strings.TrimSpace(node.URL)
		if title == "" || url == "" || !domain.IsWebURL(url) {
			return
		}

		var folderPath string
		if len(*stack) > 0 {
			folderPath = strings.Join(*stack, domain.FolderSeparator)
		}

		keywords := []string{title, url, profile}
		if folderPath != "" {
			keywords = append(keywords, folderPath)
			for _, segment := range strings.Split(folderPath, "/") {
				keywords = append(keywords, strings.TrimSpace(segment))
			}
		}

		*acc = append(*acc, domain.Bookmark{
			ID:         deriveBookmarkID(profile, node, url),
			Title:      title,
			URL:        url,
			FolderPath: folderPath,
			Keywords:   domain.NormaliseKeywords(keywords),
		})
	}
}

// deriveBookmarkID prefers the node GUID, then the native id, then a
// content hash of profile+URL.
func deriveBookmarkID(profile string, node *bookmarkNode, url string) string {
	if node.GUID != "" {
		return profile + ":" + node.GUID
	}
	if node.ID != "" {
		return profile + ":" + node.ID
	}
	sum := sha1.Sum([]byte(profile + url)) //nolint:gosec // identity fallback
	return profile + ":" + hex.EncodeToString(sum[:])
}
