package system

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// Ensure ProcessLauncher implements the interface.
var _ driven.ProcessLauncher = (*ProcessLauncher)(nil)

// ProcessLauncher starts detached processes via the local OS.
type ProcessLauncher struct{}

// NewProcessLauncher creates a process launcher.
func NewProcessLauncher() *ProcessLauncher {
	return &ProcessLauncher{}
}

// Launch starts the target detached from the current process.
// Elevated launches are delegated to the OS elevation prompt on
// Windows and rejected elsewhere.
func (l *ProcessLauncher) Launch(ctx context.Context, spec driven.LaunchSpec) error {
	if spec.Elevated && runtime.GOOS != "windows" {
		return fmt.Errorf("%w on %s", domain.ErrElevationUnsupported, runtime.GOOS)
	}

	cmd := buildCommand(ctx, spec)
	if spec.WorkingDir != "" {
		cmd.Dir = spec.WorkingDir
	}

	logger.Debug("launching %s", spec.Target)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLaunchFailed, err)
	}

	// Detach: the launched program outlives this process.
	go func() { _ = cmd.Wait() }()
	return nil
}

func buildCommand(ctx context.Context, spec driven.LaunchSpec) *exec.Cmd {
	if spec.Elevated {
		// Windows only; the elevation prompt comes from the OS.
		args := []string{"-NoProfile", "-Command", "Start-Process", "-Verb", "RunAs", "-FilePath", spec.Target}
		if spec.Arguments != "" {
			args = append(args, "-ArgumentList", spec.Arguments)
		}
		return exec.CommandContext(ctx, "powershell", args...)
	}
	return exec.CommandContext(ctx, spec.Target, splitArguments(spec.Arguments)...)
}

// splitArguments breaks a saved argument string on whitespace,
// honouring double quotes.
func splitArguments(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inQuotes := false
	for _, r := range raw {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
