// Package fuzzy implements the single match function the query engine
// scores candidates with: a case-insensitive substring/subsequence
// match returning an integer score, or no match.
package fuzzy

import "strings"

// Score tiers. Substring hits always outrank subsequence hits on the
// same field; within a tier, earlier and tighter matches score higher.
const (
	substringBase   = 2000
	subsequenceBase = 1000
)

// Match scores query against candidate. Returns the score and true on
// a hit, or 0 and false when the query does not match. Matching is
// case-insensitive; the empty query never matches.
func Match(candidate, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || candidate == "" {
		return 0, false
	}
	c := strings.ToLower(candidate)

	if idx := strings.Index(c, q); idx >= 0 {
		return substringBase - idx*20 - len(c), true
	}

	if score, ok := subsequenceScore(c, q); ok {
		return subsequenceBase + score, true
	}
	return 0, false
}

// subsequenceScore walks candidate looking for query's runes in order,
// rewarding consecutive hits and matches near the start.
func subsequenceScore(candidate, query string) (int, bool) {
	qr := []rune(query)
	cr := []rune(candidate)
	if len(qr) == 0 || len(cr) == 0 {
		return 0, false
	}

	qi := 0
	score := 0
	lastMatch := -1

	for ci, r := range cr {
		if qi >= len(qr) {
			break
		}
		if r != qr[qi] {
			continue
		}
		score += 5
		if lastMatch == ci-1 {
			score += 10 // reward consecutive matches
		}
		if qi == 0 && 15-ci*2 > 0 {
			score += 15 - ci*2 // prefer matches near the start
		}
		lastMatch = ci
		qi++
	}

	if qi != len(qr) {
		return 0, false
	}
	return score - len(cr), true
}
