package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResultExpired indicates a result id from a superseded query.
	// The user should search again.
	ErrResultExpired = errors.New("result expired, search again")

	// ErrTargetMissing indicates a launch target no longer exists on disk.
	ErrTargetMissing = errors.New("target no longer exists")

	// ErrLaunchFailed indicates the OS refused to start the target.
	ErrLaunchFailed = errors.New("launch failed")

	// ErrActivationFailed indicates packaged-app activation failed.
	ErrActivationFailed = errors.New("activation failed")

	// ErrUnresolvable indicates a shortcut file could not be resolved.
	ErrUnresolvable = errors.New("shortcut unresolvable")

	// ErrElevationUnsupported indicates the platform launcher cannot
	// honour an elevated launch request.
	ErrElevationUnsupported = errors.New("elevated launch not supported")
)
