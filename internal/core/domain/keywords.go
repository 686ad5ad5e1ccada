package domain

import (
	"sort"
	"strings"
)

// NormaliseKeywords drops blank elements, sorts and deduplicates a
// keyword set. Case is preserved; matching is case-insensitive at
// query time, so "Firefox" and "firefox" are kept as distinct elements
// only if both were contributed.
func NormaliseKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		out = append(out, kw)
	}
	sort.Strings(out)

	deduped := out[:0]
	var prev string
	for i, kw := range out {
		if i > 0 && kw == prev {
			continue
		}
		deduped = append(deduped, kw)
		prev = kw
	}
	return deduped
}
