package system

import (
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure the no-op shell services implement the interfaces.
var (
	_ driven.InputMethodService = (*NullInputMethodService)(nil)
	_ driven.WindowService      = (*NullWindowService)(nil)
)

// NullInputMethodService is used on hosts without an input-method
// integration. It never captures a layout, so nothing is restored.
type NullInputMethodService struct{}

// NewNullInputMethodService creates a no-op input-method service.
func NewNullInputMethodService() *NullInputMethodService {
	return &NullInputMethodService{}
}

// Capture reports that no layout is available.
func (*NullInputMethodService) Capture() (int64, bool) { return 0, false }

// Restore is a no-op.
func (*NullInputMethodService) Restore(int64) {}

// NullWindowService is used when no launcher surface exists, such as
// one-shot CLI invocations.
type NullWindowService struct{}

// NewNullWindowService creates a no-op window service.
func NewNullWindowService() *NullWindowService {
	return &NullWindowService{}
}

// Hide is a no-op.
func (*NullWindowService) Hide() {}
