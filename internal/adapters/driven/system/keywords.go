package system

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
)

// Ensure FoldingKeywordExpander implements the interface.
var _ driven.KeywordExpander = (*FoldingKeywordExpander)(nil)

// FoldingKeywordExpander adds diacritic-folded variants of keywords so
// "café" is also findable as "cafe". Keywords that fold to themselves
// contribute no extra variant.
type FoldingKeywordExpander struct {
	fold transform.Transformer
}

// NewFoldingKeywordExpander creates a keyword expander.
func NewFoldingKeywordExpander() *FoldingKeywordExpander {
	return &FoldingKeywordExpander{
		fold: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Expand returns the keywords plus folded variants.
func (e *FoldingKeywordExpander) Expand(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, kw)
		folded, _, err := transform.String(e.fold, kw)
		if err != nil {
			continue
		}
		if folded != kw && strings.TrimSpace(folded) != "" {
			out = append(out, folded)
		}
	}
	return out
}
