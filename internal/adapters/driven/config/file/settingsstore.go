package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML. Settings are stored in a TOML file within the launcha
// config directory.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a new TOML-based settings store.
// If configDir is empty, defaults to ~/.launcha/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".launcha")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file. A missing file yields the
// defaults without error.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start with defaults
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	// Decode over the defaults so absent keys keep their default value.
	settings := domain.DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// Save persists settings to the TOML file.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
