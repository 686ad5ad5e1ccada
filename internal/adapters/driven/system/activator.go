package system

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// Ensure PackageActivator implements the interface.
var _ driven.PackageActivator = (*PackageActivator)(nil)

// PackageActivator activates packaged apps through the shell's apps
// folder. Only meaningful on Windows; other hosts refuse.
type PackageActivator struct{}

// NewPackageActivator creates a package activator.
func NewPackageActivator() *PackageActivator {
	return &PackageActivator{}
}

// Activate starts the packaged app identified by appID.
func (a *PackageActivator) Activate(ctx context.Context, appID string) error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("%w: packaged apps unsupported on %s", domain.ErrActivationFailed, runtime.GOOS)
	}

	logger.Debug("activating packaged app %s", appID)
	cmd := exec.CommandContext(ctx, "explorer.exe", `shell:appsFolder\`+appID)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrActivationFailed, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
