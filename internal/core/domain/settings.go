package domain

import "strings"

// Clamping bounds for user-tunable settings.
const (
	// MinQueryDelayMS is the minimum debounce before a query fires.
	MinQueryDelayMS = 50

	// MaxQueryDelayMS is the maximum debounce before a query fires.
	MaxQueryDelayMS = 2000

	// MinResultLimit is the smallest allowed visible result count.
	MinResultLimit = 10

	// MaxResultLimit is the largest allowed visible result count.
	MaxResultLimit = 60
)

// Settings holds all launcher configuration the query engine reads.
type Settings struct {
	// QueryDelayMS debounces interactive typing before querying.
	QueryDelayMS int `toml:"query_delay_ms"`

	// MaxResults is the visible result limit per query.
	MaxResults int `toml:"max_results"`

	// EnableAppResults toggles application candidates globally.
	EnableAppResults bool `toml:"enable_app_results"`

	// EnableBookmarkResults toggles bookmark candidates globally.
	EnableBookmarkResults bool `toml:"enable_bookmark_results"`

	// PrefixApp is the mode prefix selecting application-only queries.
	PrefixApp string `toml:"prefix_app"`

	// PrefixBookmark is the mode prefix selecting bookmark-only queries.
	PrefixBookmark string `toml:"prefix_bookmark"`

	// PrefixSearch is the mode prefix selecting search-only queries.
	PrefixSearch string `toml:"prefix_search"`

	// SystemToolExclusions suppresses applications whose effective path
	// matches one of these paths, compared case-insensitively.
	SystemToolExclusions []string `toml:"system_tool_exclusions"`

	// ForceEnglishInput switches the IME to an English layout while the
	// launcher window is focused.
	ForceEnglishInput bool `toml:"force_english_input"`

	// LaunchOnStartup registers the launcher to start with the session.
	LaunchOnStartup bool `toml:"launch_on_startup"`

	// DebugMode enables verbose diagnostics.
	DebugMode bool `toml:"debug_mode"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		QueryDelayMS:          200,
		MaxResults:            20,
		EnableAppResults:      true,
		EnableBookmarkResults: true,
		PrefixApp:             "R",
		PrefixBookmark:        "B",
		PrefixSearch:          "S",
	}
}

// ClampQueryDelay bounds a candidate delay into the allowed range.
func ClampQueryDelay(ms int) int {
	if ms < MinQueryDelayMS {
		return MinQueryDelayMS
	}
	if ms > MaxQueryDelayMS {
		return MaxQueryDelayMS
	}
	return ms
}

// ClampMaxResults bounds a candidate result limit into the allowed range.
func ClampMaxResults(limit int) int {
	if limit < MinResultLimit {
		return MinResultLimit
	}
	if limit > MaxResultLimit {
		return MaxResultLimit
	}
	return limit
}

// NormalisePrefix validates a mode prefix: one ASCII letter, optionally
// followed by a single space or colon. The letter is upper-cased.
// Returns the normalised prefix and true, or "" and false if invalid.
func NormalisePrefix(value string) (string, bool) {
	trimmed := strings.TrimLeft(value, " \t")
	if trimmed == "" {
		return "", false
	}

	first := trimmed[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	if first < 'A' || first > 'Z' {
		return "", false
	}

	normalised := string(first)
	rest := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, trimmed[1:])

	if rest == "" {
		return normalised, true
	}

	switch rest[0] {
	case ' ', ':':
		normalised += string(rest[0])
	default:
		return "", false
	}

	if strings.TrimSpace(rest[1:]) != "" {
		return "", false
	}
	return normalised, true
}
