package driven

import "context"

// PackagedApp is one user-facing app-list entry of an installed package.
type PackagedApp struct {
	// AppID is the activation identity string.
	AppID string

	// DisplayName is the app's display name.
	DisplayName string

	// Description is the app's description, possibly empty.
	Description string

	// Logo is the app's logo image bytes, possibly nil.
	Logo []byte

	// PackageName is the owning package's name.
	PackageName string

	// PackageFamily is the owning package's family name.
	PackageFamily string

	// PackageFullName is the owning package's full name.
	PackageFullName string
}

// PackageEnumerator lists packaged/sandboxed applications.
type PackageEnumerator interface {
	// Apps returns one entry per user-facing app-list entry.
	Apps(ctx context.Context) ([]PackagedApp, error)
}
