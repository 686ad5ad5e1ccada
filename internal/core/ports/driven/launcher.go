package driven

import "context"

// LaunchSpec describes one direct-path launch request.
type LaunchSpec struct {
	// Target is the filesystem path or URI to execute.
	Target string

	// Arguments are optional launch arguments.
	Arguments string

	// WorkingDir is an optional working directory.
	WorkingDir string

	// Elevated requests an elevated launch verb.
	Elevated bool
}

// ProcessLauncher executes a direct filesystem target.
type ProcessLauncher interface {
	// Launch starts the target. A refusal by the OS wraps
	// domain.ErrLaunchFailed.
	Launch(ctx context.Context, spec LaunchSpec) error
}

// PackageActivator activates a packaged app by its identity string.
type PackageActivator interface {
	// Activate starts the packaged app. A refusal wraps
	// domain.ErrActivationFailed.
	Activate(ctx context.Context, appID string) error
}

// URLOpener opens a URL in the default handler.
type URLOpener interface {
	// OpenURL hands off the URL to the OS.
	OpenURL(ctx context.Context, url string) error
}
