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

// Ensure URLOpener implements the interface.
var _ driven.URLOpener = (*URLOpener)(nil)

// URLOpener hands URLs to the default browser of the host OS.
type URLOpener struct{}

// NewURLOpener creates a URL opener.
func NewURLOpener() *URLOpener {
	return &URLOpener{}
}

// OpenURL opens the URL in the default handler.
func (o *URLOpener) OpenURL(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}

	logger.Debug("opening url %s", url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLaunchFailed, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
