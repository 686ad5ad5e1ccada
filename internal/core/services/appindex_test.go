package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

type mockShortcutResolver struct {
	shortcuts map[string]driven.Shortcut
}

func (m *mockShortcutResolver) Resolve(_ context.Context, path string) (*driven.Shortcut, error) {
	if s, ok := m.shortcuts[filepath.Base(path)]; ok {
		return &s, nil
	}
	return nil, errors.New("unresolvable shortcut")
}

type mockRegistry struct {
	entries map[driven.RegistryScope]map[string][]driven.UninstallEntry
}

func (m *mockRegistry) Entries(_ context.Context, scope driven.RegistryScope, subkey string) ([]driven.UninstallEntry, error) {
	bySubkey, ok := m.entries[scope]
	if !ok {
		return nil, errors.New("scope unavailable")
	}
	return bySubkey[subkey], nil
}

type mockPackages struct {
	apps []driven.PackagedApp
	err  error
}

func (m *mockPackages) Apps(context.Context) ([]driven.PackagedApp, error) {
	return m.apps, m.err
}

func writeShortcut(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("L"), 0o644))
	return path
}

func menuFixture(t *testing.T) (AppIndexerConfig, string) {
	t.Helper()
	root := t.TempDir()
	cfg := AppIndexerConfig{
		MenuRoots:     []string{root},
		StartupDirs:   []string{filepath.Join(root, "Startup")},
		ShortcutExt:   ".lnk",
		ExecutableExt: ".exe",
	}
	return cfg, root
}

func TestAppIndexer_StartMenuShortcuts(t *testing.T) {
	cfg, root := menuFixture(t)
	target := filepath.Join(t.TempDir(), "editor.exe")
	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o755))

	writeShortcut(t, root, "Editor.lnk")
	writeShortcut(t, root, "readme.txt")

	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"Editor.lnk": {TargetPath: target, Arguments: "--safe", Description: "A text editor"},
	}}

	ix := NewAppIndexer(cfg, resolver, nil, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)

	require.Len(t, apps, 1)
	app := apps[0]
	assert.Equal(t, "Editor", app.Name)
	assert.Equal(t, domain.AppKindExecutable, app.Kind)
	assert.Equal(t, target, app.SourcePath)
	assert.Equal(t, "--safe", app.Arguments)
	assert.Equal(t, "A text editor", app.Description)
	assert.True(t, strings.HasPrefix(app.ID, "exec:startmenu:"))
	assert.Contains(t, app.Keywords, "Editor")
	assert.Contains(t, app.Keywords, "editor.exe")
}

func TestAppIndexer_SkipsStartupDirAndUninstallers(t *testing.T) {
	cfg, root := menuFixture(t)

	writeShortcut(t, root, filepath.Join("Startup", "Autostart.lnk"))
	writeShortcut(t, root, "Uninstall Editor.lnk")
	writeShortcut(t, root, "Editor.lnk")

	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"Autostart.lnk":        {TargetPath: ""},
		"Uninstall Editor.lnk": {TargetPath: ""},
		"Editor.lnk":           {TargetPath: ""},
	}}

	ix := NewAppIndexer(cfg, resolver, nil, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)

	require.Len(t, apps, 1)
	assert.Equal(t, "Editor", apps[0].Name)
}

func TestAppIndexer_UnresolvableShortcutSkipped(t *testing.T) {
	cfg, root := menuFixture(t)
	writeShortcut(t, root, "Broken.lnk")

	ix := NewAppIndexer(cfg, &mockShortcutResolver{}, nil, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)
	assert.Empty(t, apps)
}

func TestAppIndexer_RegistryPathResolutionOrder(t *testing.T) {
	install := t.TempDir()
	small := filepath.Join(install, "helper.exe")
	large := filepath.Join(install, "main.exe")
	require.NoError(t, os.WriteFile(small, []byte("MZ"), 0o755))
	require.NoError(t, os.WriteFile(large, []byte(strings.Repeat("MZ", 64)), 0o755))

	declared := filepath.Join(t.TempDir(), "declared.exe")
	require.NoError(t, os.WriteFile(declared, []byte("MZ"), 0o755))

	registry := &mockRegistry{entries: map[driven.RegistryScope]map[string][]driven.UninstallEntry{
		driven.ScopeMachine: {
			uninstallSubkeys[0]: {
				{
					Subkey:          uninstallSubkeys[0],
					KeyName:         "MainApp",
					DisplayName:     "Main App",
					InstallLocation: install,
					ExecutablePath:  declared,
				},
				{
					Subkey:         uninstallSubkeys[0],
					KeyName:        "DeclaredOnly",
					DisplayName:    "Declared Only",
					ExecutablePath: declared,
				},
				{
					Subkey:      uninstallSubkeys[0],
					KeyName:     "IconOnly",
					DisplayName: "Icon Only",
					DisplayIcon: declared + ",0",
				},
				{
					Subkey:      uninstallSubkeys[0],
					KeyName:     "UninstallerIcon",
					DisplayName: "Uninstaller Icon",
					DisplayIcon: filepath.Join(install, "unins000.exe"),
				},
				{
					Subkey:          uninstallSubkeys[0],
					KeyName:         "Hidden",
					DisplayName:     "Hidden",
					SystemComponent: true,
					ExecutablePath:  declared,
				},
			},
		},
	}}

	ix := NewAppIndexer(AppIndexerConfig{ShortcutExt: ".lnk", ExecutableExt: ".exe"}, nil, registry, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)

	byName := make(map[string]domain.Application, len(apps))
	for _, app := range apps {
		byName[app.Name] = app
	}

	// Largest executable in the install location wins over the
	// declared executable path.
	require.Contains(t, byName, "Main App")
	assert.Equal(t, large, byName["Main App"].Path)

	require.Contains(t, byName, "Declared Only")
	assert.Equal(t, declared, byName["Declared Only"].Path)

	// A display icon is usable as launch path, unless it names an
	// uninstaller.
	require.Contains(t, byName, "Icon Only")
	assert.Equal(t, declared, byName["Icon Only"].Path)

	assert.NotContains(t, byName, "Uninstaller Icon")
	assert.NotContains(t, byName, "Hidden")
}

func TestAppIndexer_ShortcutWinsDedupOverRegistry(t *testing.T) {
	cfg, root := menuFixture(t)
	target := filepath.Join(t.TempDir(), "shared.exe")
	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o755))

	writeShortcut(t, root, "Shared.lnk")
	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"Shared.lnk": {TargetPath: target},
	}}
	registry := &mockRegistry{entries: map[driven.RegistryScope]map[string][]driven.UninstallEntry{
		driven.ScopeMachine: {
			uninstallSubkeys[0]: {
				{
					Subkey:         uninstallSubkeys[0],
					KeyName:        "SharedApp",
					DisplayName:    "Shared App",
					ExecutablePath: target,
				},
			},
		},
	}}

	ix := NewAppIndexer(cfg, resolver, registry, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)

	require.Len(t, apps, 1)
	assert.True(t, strings.HasPrefix(apps[0].ID, "exec:startmenu:"))
}

func TestAppIndexer_ExclusionsSuppressEntries(t *testing.T) {
	cfg, root := menuFixture(t)
	target := filepath.Join(t.TempDir(), "excluded.exe")
	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o755))

	writeShortcut(t, root, "Excluded.lnk")
	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"Excluded.lnk": {TargetPath: target},
	}}

	ix := NewAppIndexer(cfg, resolver, nil, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), []string{strings.ToUpper(target)})
	assert.Empty(t, apps)
}

func TestAppIndexer_PackagedApps(t *testing.T) {
	packages := &mockPackages{apps: []driven.PackagedApp{
		{
			AppID:       "Contoso.Notes_abc!App",
			DisplayName: "Notes",
			Description: "Quick notes",
			Logo:        []byte{0x89, 0x50},
			PackageName: "Contoso.Notes",
		},
		{AppID: "", DisplayName: "Nameless"},
	}}

	ix := NewAppIndexer(AppIndexerConfig{ShortcutExt: ".lnk", ExecutableExt: ".exe"}, nil, nil, packages, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)

	require.Len(t, apps, 1)
	app := apps[0]
	assert.Equal(t, "pkg:contoso.notes_abc!app", app.ID)
	assert.Equal(t, domain.AppKindPackaged, app.Kind)
	assert.Equal(t, "Contoso.Notes_abc!App", app.Path)
	assert.NotEmpty(t, app.IconData)
	assert.Contains(t, app.Keywords, "Contoso.Notes")
}

func TestAppIndexer_CatalogSortedByName(t *testing.T) {
	cfg, root := menuFixture(t)
	writeShortcut(t, root, "zebra.lnk")
	writeShortcut(t, root, "Alpha.lnk")

	resolver := &mockShortcutResolver{shortcuts: map[string]driven.Shortcut{
		"zebra.lnk": {},
		"Alpha.lnk": {},
	}}

	ix := NewAppIndexer(cfg, resolver, nil, nil, nil, nil)
	apps := ix.BuildIndex(context.Background(), nil)

	require.Len(t, apps, 2)
	assert.Equal(t, "Alpha", apps[0].Name)
	assert.Equal(t, "zebra", apps[1].Name)
}
