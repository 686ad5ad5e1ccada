package driven

// KeywordExpander adds phonetic/locale variants to a keyword set.
// The returned slice contains the input keywords plus any variants;
// the caller normalises the result.
type KeywordExpander interface {
	// Expand returns keywords plus derived variants.
	Expand(keywords []string) []string
}
