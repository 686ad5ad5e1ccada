package driving

import (
	"context"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
)

// QueryService ranks catalog entries against a partial text query.
type QueryService interface {
	// Query returns ranked results for the text under the given mode
	// hint, and records the matching actions in the pending cache.
	// Empty or whitespace-only text yields an empty list and leaves
	// the pending cache untouched.
	Query(ctx context.Context, text, modeHint string) ([]domain.SearchResult, error)
}
