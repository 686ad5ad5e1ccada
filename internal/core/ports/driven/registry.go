package driven

import "context"

// RegistryScope selects a registry root for uninstall enumeration.
type RegistryScope string

// Available registry scopes.
const (
	// ScopeMachine enumerates machine-wide installations.
	ScopeMachine RegistryScope = "machine"

	// ScopeUser enumerates per-user installations.
	ScopeUser RegistryScope = "user"
)

// UninstallEntry is the named values of one uninstall registry key.
// String values are empty when the value is absent.
type UninstallEntry struct {
	// Subkey is the uninstall subtree path the entry was found under.
	Subkey string

	// KeyName is the registry key name of the entry.
	KeyName string

	// DisplayName is the installed program's display name.
	DisplayName string

	// SystemComponent marks entries hidden from program lists.
	SystemComponent bool

	// NoDisplay marks entries explicitly hidden.
	NoDisplay bool

	// DisplayIcon is the declared icon path value.
	DisplayIcon string

	// ExecutablePath is the declared executable value.
	ExecutablePath string

	// InstallLocation is the declared installation folder.
	InstallLocation string

	// InstallSource is the declared installation source folder.
	InstallSource string

	// Publisher is the declared publisher.
	Publisher string

	// DisplayVersion is the declared version string.
	DisplayVersion string
}

// UninstallRegistry enumerates installed-program uninstall entries.
type UninstallRegistry interface {
	// Entries lists the child entries of one (scope, subkey) subtree.
	// An unreadable subtree returns an error; the indexer treats it as
	// an empty contribution for that subtree.
	Entries(ctx context.Context, scope RegistryScope, subkey string) ([]UninstallEntry, error)
}
