package services

import (
	"context"
	"encoding/base64"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// Uninstall registry subtrees, enumerated under both scopes.
var uninstallSubkeys = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

var registryScopes = []driven.RegistryScope{
	driven.ScopeMachine,
	driven.ScopeUser,
}

// AppIndexerConfig locates the filesystem sources of the indexer.
type AppIndexerConfig struct {
	// MenuRoots are the program-menu directories walked for shortcuts.
	MenuRoots []string

	// StartupDirs are subtrees skipped during the walk.
	StartupDirs []string

	// ShortcutExt is the shortcut file extension, including the dot.
	ShortcutExt string

	// ExecutableExt is the executable extension used when probing
	// install folders, including the dot.
	ExecutableExt string
}

// DefaultAppIndexerConfig derives menu roots from the per-user and
// per-machine environment, mirroring where the OS keeps its program
// menus. Missing roots are simply absent from the walk.
func DefaultAppIndexerConfig() AppIndexerConfig {
	cfg := AppIndexerConfig{
		ShortcutExt:   ".lnk",
		ExecutableExt: ".exe",
	}
	for _, env := range []string{"APPDATA", "PROGRAMDATA"} {
		base := os.Getenv(env)
		if base == "" {
			continue
		}
		programs := filepath.Join(base, "Microsoft", "Windows", "Start Menu", "Programs")
		cfg.MenuRoots = append(cfg.MenuRoots, programs)
		cfg.StartupDirs = append(cfg.StartupDirs, filepath.Join(programs, "Startup"))
	}
	return cfg
}

// AppIndexer builds the application catalog from start-menu shortcuts,
// uninstall registry entries and packaged apps. Per-source failures
// degrade to an empty contribution for that source.
type AppIndexer struct {
	cfg       AppIndexerConfig
	shortcuts driven.ShortcutResolver
	registry  driven.UninstallRegistry
	packages  driven.PackageEnumerator
	icons     driven.IconRenderer
	expander  driven.KeywordExpander
}

// NewAppIndexer creates an application indexer. The icon renderer and
// keyword expander are optional (can be nil).
func NewAppIndexer(
	cfg AppIndexerConfig,
	shortcuts driven.ShortcutResolver,
	registry driven.UninstallRegistry,
	packages driven.PackageEnumerator,
	icons driven.IconRenderer,
	expander driven.KeywordExpander,
) *AppIndexer {
	return &AppIndexer{
		cfg:       cfg,
		shortcuts: shortcuts,
		registry:  registry,
		packages:  packages,
		icons:     icons,
		expander:  expander,
	}
}

// BuildIndex enumerates all three sources, deduplicates and sorts the
// catalog. Entries whose effective path matches the exclusion set are
// suppressed. Never fails; sources that error contribute nothing.
func (ix *AppIndexer) BuildIndex(ctx context.Context, exclusions []string) []domain.Application {
	logger.Section("Application Index")

	var results []domain.Application

	menu := ix.indexStartMenu(ctx)
	logger.Debug("indexed %d start menu shortcuts", len(menu))
	results = append(results, menu...)

	installed := ix.indexInstalled(ctx)
	logger.Debug("indexed %d installed programs", len(installed))
	results = append(results, installed...)

	packaged := ix.indexPackaged(ctx)
	logger.Debug("indexed %d packaged apps", len(packaged))
	results = append(results, packaged...)

	excluded := make(map[string]bool, len(exclusions))
	for _, path := range exclusions {
		excluded[strings.ToLower(path)] = true
	}

	// Dedup by (kind, effective path); shortcuts are enumerated before
	// registry entries, so on conflict the shortcut entry wins.
	seen := make(map[string]bool, len(results))
	deduped := results[:0]
	for _, app := range results {
		if excluded[strings.ToLower(app.EffectivePath())] {
			continue
		}
		key := app.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, app)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return strings.ToLower(deduped[i].Name) < strings.ToLower(deduped[j].Name)
	})

	logger.Info("application catalog: %d entries", len(deduped))
	return deduped
}

// indexStartMenu walks the program-menu roots for shortcut files.
func (ix *AppIndexer) indexStartMenu(ctx context.Context) []domain.Application {
	if ix.shortcuts == nil {
		return nil
	}

	var apps []domain.Application
	for _, root := range ix.cfg.MenuRoots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable subtree: skip, keep walking
			}
			if entry.IsDir() {
				if ix.isStartupDir(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.EqualFold(filepath.Ext(path), ix.cfg.ShortcutExt) {
				return nil
			}
			if app, ok := ix.shortcutToApplication(ctx, path); ok {
				apps = append(apps, app)
			}
			return nil
		})
		if err != nil {
			logger.Warn("start menu walk failed for %s: %v", root, err)
		}
	}
	return apps
}

func (ix *AppIndexer) isStartupDir(path string) bool {
	for _, startup := range ix.cfg.StartupDirs {
		if strings.EqualFold(filepath.Clean(path), filepath.Clean(startup)) {
			return true
		}
	}
	return false
}

// shortcutToApplication resolves one shortcut file into a catalog
// entry, or skips it.
func (ix *AppIndexer) shortcutToApplication(ctx context.Context, path string) (domain.Application, bool) {
	shortcut, err := ix.shortcuts.Resolve(ctx, path)
	if err != nil || shortcut == nil {
		return domain.Application{}, false
	}

	name := strings.TrimSpace(fileStem(path))
	if name == "" {
		return domain.Application{}, false
	}

	resolved := sanitizeExecutablePath(shortcut.TargetPath)
	displayTarget := resolved
	if displayTarget == "" {
		displayTarget = strings.TrimSpace(shortcut.TargetPath)
	}

	if looksLikeUninstaller(name) || looksLikeUninstaller(displayTarget) {
		return domain.Application{}, false
	}

	keywords := []string{name}
	if displayTarget != "" {
		keywords = append(keywords, displayTarget, filepath.Base(displayTarget))
	}
	if shortcut.Description != "" {
		keywords = append(keywords, shortcut.Description)
	}

	iconSource := sanitizeIconSource(shortcut.IconPath)
	if iconSource == "" {
		iconSource = displayTarget
	}
	if iconSource == "" {
		iconSource = path
	}

	return domain.Application{
		ID:          "exec:startmenu:" + strings.ToLower(path),
		Name:        name,
		Path:        path,
		SourcePath:  displayTarget,
		Arguments:   shortcut.Arguments,
		WorkingDir:  shortcut.WorkingDir,
		Kind:        domain.AppKindExecutable,
		IconData:    ix.renderIcon(ctx, iconSource, shortcut.IconIndex),
		Description: strings.TrimSpace(shortcut.Description),
		Keywords:    ix.expandKeywords(keywords),
	}, true
}

// indexInstalled enumerates the uninstall registry subtrees.
func (ix *AppIndexer) indexInstalled(ctx context.Context) []domain.Application {
	if ix.registry == nil {
		return nil
	}

	var apps []domain.Application
	seen := make(map[string]bool)

	for _, scope := range registryScopes {
		for _, subkey := range uninstallSubkeys {
			entries, err := ix.registry.Entries(ctx, scope, subkey)
			if err != nil {
				logger.Debug("registry subtree %s/%s unreadable: %v", scope, subkey, err)
				continue
			}
			for _, entry := range entries {
				app, ok := ix.registryEntryToApplication(ctx, entry)
				if !ok {
					continue
				}
				if seen[app.ID] {
					continue
				}
				seen[app.ID] = true
				apps = append(apps, app)
			}
		}
	}
	return apps
}

// registryEntryToApplication normalises one uninstall entry, resolving
// a launch path by trying install-location, declared executable,
// non-uninstaller icon path and install source, in that order.
func (ix *AppIndexer) registryEntryToApplication(ctx context.Context, entry driven.UninstallEntry) (domain.Application, bool) {
	if entry.SystemComponent || entry.NoDisplay {
		return domain.Application{}, false
	}

	name := strings.TrimSpace(entry.DisplayName)
	if name == "" {
		return domain.Application{}, false
	}

	iconPath := sanitizeExecutablePath(entry.DisplayIcon)

	path := ix.largestExecutableIn(entry.InstallLocation)
	if path == "" {
		path = sanitizeExecutablePath(entry.ExecutablePath)
	}
	if path == "" && iconPath != "" && !looksLikeUninstaller(iconPath) {
		path = iconPath
	}
	if path == "" {
		path = ix.largestExecutableIn(entry.InstallSource)
	}
	if path == "" {
		return domain.Application{}, false
	}

	description := strings.TrimSpace(entry.Publisher)

	keywords := []string{name}
	if description != "" {
		keywords = append(keywords, description)
	}
	if version := strings.TrimSpace(entry.DisplayVersion); version != "" {
		keywords = append(keywords, version)
	}

	iconSource := iconPath
	if iconSource == "" {
		iconSource = path
	}

	return domain.Application{
		ID:          strings.ToLower("exec:installed:" + entry.Subkey + ":" + entry.KeyName),
		Name:        name,
		Path:        path,
		SourcePath:  path,
		Kind:        domain.AppKindExecutable,
		IconData:    ix.renderIcon(ctx, iconSource, 0),
		Description: description,
		Keywords:    ix.expandKeywords(keywords),
	}, true
}

// indexPackaged enumerates packaged apps via the package adapter.
func (ix *AppIndexer) indexPackaged(ctx context.Context) []domain.Application {
	if ix.packages == nil {
		return nil
	}

	entries, err := ix.packages.Apps(ctx)
	if err != nil {
		logger.Warn("package enumeration failed: %v", err)
		return nil
	}

	apps := make([]domain.Application, 0, len(entries))
	for _, entry := range entries {
		if entry.AppID == "" || entry.DisplayName == "" {
			continue
		}

		keywords := []string{entry.DisplayName, entry.AppID}
		if entry.Description != "" {
			keywords = append(keywords, entry.Description)
		}
		for _, kw := range []string{entry.PackageName, entry.PackageFamily, entry.PackageFullName} {
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}

		var icon string
		if len(entry.Logo) > 0 {
			icon = base64.StdEncoding.EncodeToString(entry.Logo)
		}

		apps = append(apps, domain.Application{
			ID:          "pkg:" + strings.ToLower(entry.AppID),
			Name:        entry.DisplayName,
			Path:        entry.AppID,
			Kind:        domain.AppKindPackaged,
			IconData:    icon,
			Description: entry.Description,
			Keywords:    ix.expandKeywords(keywords),
		})
	}
	return apps
}

// largestExecutableIn returns the biggest executable directly inside
// folder, or "" when the folder is unusable.
func (ix *AppIndexer) largestExecutableIn(folder string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(folder), `/\`)
	if trimmed == "" {
		return ""
	}
	expanded := expandEnvVars(trimmed)

	entries, err := os.ReadDir(expanded)
	if err != nil {
		return ""
	}

	var best string
	var bestSize int64 = -1
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ix.cfg.ExecutableExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Size() > bestSize {
			bestSize = info.Size()
			best = filepath.Join(expanded, entry.Name())
		}
	}
	return best
}

func (ix *AppIndexer) renderIcon(ctx context.Context, source string, index int) string {
	if ix.icons == nil || source == "" {
		return ""
	}
	data, err := ix.icons.Render(ctx, source, index)
	if err != nil || len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

func (ix *AppIndexer) expandKeywords(keywords []string) []string {
	if ix.expander != nil {
		keywords = ix.expander.Expand(keywords)
	}
	return domain.NormaliseKeywords(keywords)
}

// sanitizeExecutablePath trims quotes and trailing icon-index suffixes
// from a declared path value and verifies the file exists.
func sanitizeExecutablePath(raw string) string {
	trimmed := strings.Trim(strings.TrimSpace(raw), `"'`)
	if trimmed == "" {
		return ""
	}

	candidate := trimmed
	if idx := strings.IndexAny(candidate, ",;"); idx >= 0 {
		candidate = candidate[:idx]
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}

	expanded := expandEnvVars(candidate)
	if info, err := os.Stat(expanded); err == nil && !info.IsDir() {
		return expanded
	}
	return ""
}

// sanitizeIconSource expands an icon path hint and keeps it only when
// it points at an existing file.
func sanitizeIconSource(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	expanded := expandEnvVars(trimmed)
	if _, err := os.Stat(expanded); err == nil {
		return expanded
	}
	return ""
}

// expandEnvVars expands both %NAME% and $NAME references.
func expandEnvVars(s string) string {
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			break
		}
		name := s[start+1 : start+1+end]
		s = s[:start] + os.Getenv(name) + s[start+2+end:]
	}
	return os.Expand(s, os.Getenv)
}

// looksLikeUninstaller reports whether a name or path refers to an
// uninstall helper rather than the application itself.
func looksLikeUninstaller(s string) bool {
	return strings.Contains(strings.ToLower(s), "unins")
}

// fileStem returns the file name without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
