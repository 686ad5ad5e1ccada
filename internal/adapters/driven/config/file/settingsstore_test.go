package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

func TestNewSettingsStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	assert.DirExists(t, dir)
}

func TestSettingsStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	settings := domain.DefaultSettings()
	settings.QueryDelayMS = 400
	settings.MaxResults = 35
	settings.PrefixApp = "A"
	settings.SystemToolExclusions = []string{`C:\Windows\System32\calc.exe`}
	settings.DebugMode = true

	require.NoError(t, store.Save(settings))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingsStore_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	content := "query_delay_ms = 300\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 300, loaded.QueryDelayMS)
	assert.Equal(t, domain.DefaultSettings().MaxResults, loaded.MaxResults)
	assert.Equal(t, domain.DefaultSettings().PrefixSearch, loaded.PrefixSearch)
}

func TestSettingsStore_CorruptFileErrors(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("not = [valid"), 0600))

	_, err = store.Load()
	assert.Error(t, err)
}
