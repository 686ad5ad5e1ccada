package staticsrc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure Source implements the source interfaces.
var (
	_ driven.ShortcutResolver  = (*Source)(nil)
	_ driven.UninstallRegistry = (*Source)(nil)
	_ driven.PackageEnumerator = (*Source)(nil)
)

type manifestShortcut struct {
	TargetPath  string `json:"target_path"`
	Arguments   string `json:"arguments"`
	WorkingDir  string `json:"working_dir"`
	Description string `json:"description"`
	IconPath    string `json:"icon_path"`
	IconIndex   int    `json:"icon_index"`
}

type manifestRegistryEntry struct {
	KeyName         string `json:"key_name"`
	DisplayName     string `json:"display_name"`
	SystemComponent bool   `json:"system_component"`
	NoDisplay       bool   `json:"no_display"`
	DisplayIcon     string `json:"display_icon"`
	ExecutablePath  string `json:"executable_path"`
	InstallLocation string `json:"install_location"`
	InstallSource   string `json:"install_source"`
	Publisher       string `json:"publisher"`
	DisplayVersion  string `json:"display_version"`
}

type manifestPackage struct {
	AppID           string `json:"app_id"`
	DisplayName     string `json:"display_name"`
	Description     string `json:"description"`
	LogoBase64      string `json:"logo_base64"`
	PackageName     string `json:"package_name"`
	PackageFamily   string `json:"package_family"`
	PackageFullName string `json:"package_full_name"`
}

type manifest struct {
	// Shortcuts maps shortcut file base names to their metadata.
	Shortcuts map[string]manifestShortcut `json:"shortcuts"`

	// Registry maps scope, then subkey, to uninstall entries.
	Registry map[string]map[string][]manifestRegistryEntry `json:"registry"`

	// Packages lists packaged apps.
	Packages []manifestPackage `json:"packages"`
}

// Source serves the three application sources from a JSON manifest.
type Source struct {
	manifest manifest
}

// Load reads a manifest file.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &Source{manifest: m}, nil
}

// Resolve looks up a shortcut by its file base name.
func (s *Source) Resolve(_ context.Context, path string) (*driven.Shortcut, error) {
	entry, ok := s.manifest.Shortcuts[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s not in manifest", domain.ErrUnresolvable, path)
	}
	return &driven.Shortcut{
		TargetPath:  entry.TargetPath,
		Arguments:   entry.Arguments,
		WorkingDir:  entry.WorkingDir,
		Description: entry.Description,
		IconPath:    entry.IconPath,
		IconIndex:   entry.IconIndex,
	}, nil
}

// Entries lists the manifest's uninstall entries for one subtree.
func (s *Source) Entries(_ context.Context, scope driven.RegistryScope, subkey string) ([]driven.UninstallEntry, error) {
	bySubkey, ok := s.manifest.Registry[string(scope)]
	if !ok {
		return nil, fmt.Errorf("scope %s not in manifest", scope)
	}

	var raw []manifestRegistryEntry
	for key, entries := range bySubkey {
		if strings.EqualFold(key, subkey) {
			raw = entries
			break
		}
	}

	out := make([]driven.UninstallEntry, 0, len(raw))
	for _, e := range raw {
		out = append(out, driven.UninstallEntry{
			Subkey:          subkey,
			KeyName:         e.KeyName,
			DisplayName:     e.DisplayName,
			SystemComponent: e.SystemComponent,
			NoDisplay:       e.NoDisplay,
			DisplayIcon:     e.DisplayIcon,
			ExecutablePath:  e.ExecutablePath,
			InstallLocation: e.InstallLocation,
			InstallSource:   e.InstallSource,
			Publisher:       e.Publisher,
			DisplayVersion:  e.DisplayVersion,
		})
	}
	return out, nil
}

// Apps lists the manifest's packaged apps.
func (s *Source) Apps(context.Context) ([]driven.PackagedApp, error) {
	out := make([]driven.PackagedApp, 0, len(s.manifest.Packages))
	for _, p := range s.manifest.Packages {
		var logo []byte
		if p.LogoBase64 != "" {
			decoded, err := base64.StdEncoding.DecodeString(p.LogoBase64)
			if err == nil {
				logo = decoded
			}
		}
		out = append(out, driven.PackagedApp{
			AppID:           p.AppID,
			DisplayName:     p.DisplayName,
			Description:     p.Description,
			Logo:            logo,
			PackageName:     p.PackageName,
			PackageFamily:   p.PackageFamily,
			PackageFullName: p.PackageFullName,
		})
	}
	return out, nil
}
