package services

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/custodia-labs/launcha-cli/internal/core/domain"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/core/ports/driving"
	"github.com/custodia-labs/launcha-cli/internal/fuzzy"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// Ranking constants. Empirically tuned, kept as-is rather than
// re-derived; see penalty handling in matchApplication/matchBookmark.
const (
	// KeywordPenalty ranks application keyword matches below a direct
	// name match.
	KeywordPenalty = 5

	// BookmarkFolderPenalty ranks folder-path matches below a title
	// match.
	BookmarkFolderPenalty = 5

	// BookmarkURLPenalty ranks URL matches below title and folder
	// matches.
	BookmarkURLPenalty = 8

	// BookmarkKeywordPenalty ranks bookmark keyword matches lowest.
	BookmarkKeywordPenalty = 8

	// URLResultScore is the fixed score of the "open this URL"
	// pseudo-result. It sits above the substring match tier so the
	// entry outranks every catalog hit and survives truncation.
	URLResultScore = 2200

	// WebSearchScore pins the web-search pseudo-result below every
	// real match.
	WebSearchScore = math.MinInt
)

// searchURLBase is the redirect endpoint for the web-search entry.
const searchURLBase = "https://google.com/search?q="

// QueryService ranks catalog entries against a partial text query and
// records the pending actions its results resolve to.
type QueryService struct {
	apps      driven.ApplicationCatalog
	bookmarks driven.BookmarkCatalog
	pending   driven.PendingActionStore
	settings  driving.SettingsService
}

// NewQueryService creates a query service over the shared catalogs.
func NewQueryService(
	apps driven.ApplicationCatalog,
	bookmarks driven.BookmarkCatalog,
	pending driven.PendingActionStore,
	settings driving.SettingsService,
) *QueryService {
	return &QueryService{
		apps:      apps,
		bookmarks: bookmarks,
		pending:   pending,
		settings:  settings,
	}
}

// Query matches text against both catalogs plus the synthetic URL and
// web-search entries, and swaps the pending-action cache to this
// query's results. Empty or whitespace-only text returns an empty list
// and leaves the catalogs and pending cache untouched.
func (s *QueryService) Query(ctx context.Context, text, modeHint string) ([]domain.SearchResult, error) {
	logger.Section("Query Execution")

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		logger.Debug("empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	mode := domain.ParseQueryMode(modeHint)
	cfg := s.settings.Get(ctx)
	limit := domain.ClampMaxResults(cfg.MaxResults)
	logger.Debug("query %q mode=%s limit=%d", trimmed, mode, limit)

	results := make([]domain.SearchResult, 0, limit)
	pending := make(map[string]domain.PendingAction)
	counter := 0

	// A URL-like query always offers an open-URL entry, regardless of
	// the mode filter.
	if isURLLike(trimmed) {
		id := fmt.Sprintf("url-%d", counter)
		pending[id] = domain.PendingURL(trimmed)
		results = append(results, domain.SearchResult{
			ID:       id,
			Title:    "Open URL: " + trimmed,
			Subtitle: trimmed,
			Score:    URLResultScore,
			Action:   domain.ActionURL,
		})
		counter++
	}

	if mode.AllowsApplications() && cfg.EnableAppResults {
		for _, app := range s.apps.Snapshot() {
			score, ok := matchApplication(app, trimmed)
			if !ok {
				continue
			}
			counter++
			id := "app-" + app.ID
			pending[id] = domain.PendingApp(app)
			action := domain.ActionApp
			if app.Kind == domain.AppKindPackaged {
				action = domain.ActionPackaged
			}
			results = append(results, domain.SearchResult{
				ID:       id,
				Title:    app.Name,
				Subtitle: app.Subtitle(),
				IconData: app.IconData,
				Score:    score,
				Action:   action,
			})
		}
	}

	if mode.AllowsBookmarks() && cfg.EnableBookmarkResults {
		for _, bookmark := range s.bookmarks.Snapshot() {
			score, ok := matchBookmark(bookmark, trimmed)
			if !ok {
				continue
			}
			counter++
			id := "bookmark-" + bookmark.ID
			pending[id] = domain.PendingBookmark(bookmark)
			results = append(results, domain.SearchResult{
				ID:       id,
				Title:    bookmark.Title,
				Subtitle: bookmark.Subtitle(),
				Score:    score,
				Action:   domain.ActionBookmark,
			})
		}
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	// Reserve one slot for the trailing web-search entry whenever the
	// limit is reachable.
	if limit > 1 && len(results) >= limit {
		results = results[:limit-1]
	} else if len(results) > limit {
		results = results[:limit]
	}

	if mode.AllowsWebSearch() {
		id := fmt.Sprintf("search-%d", counter)
		searchURL := searchURLBase + url.QueryEscape(trimmed)
		pending[id] = domain.PendingSearch(searchURL)
		results = append(results, domain.SearchResult{
			ID:       id,
			Title:    "Search the web for: " + trimmed,
			Subtitle: "Web search",
			Score:    WebSearchScore,
			Action:   domain.ActionSearch,
		})
	}

	s.pending.Replace(pending)
	logger.Info("query %q: %d results, %d pending actions", trimmed, len(results), len(pending))
	return results, nil
}

// isURLLike reports whether the raw query should offer an open-URL
// entry: an explicit web scheme, or a single token containing a dot.
func isURLLike(input string) bool {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return true
	}
	return strings.Contains(input, ".") && len(strings.Fields(input)) == 1
}

// matchApplication scores an application candidate: the best of the
// name match and each keyword match minus KeywordPenalty.
func matchApplication(app domain.Application, query string) (int, bool) {
	best, found := fuzzy.Match(app.Name, query)

	for _, keyword := range app.Keywords {
		score, ok := fuzzy.Match(keyword, query)
		if !ok {
			continue
		}
		score -= KeywordPenalty
		if !found || score > best {
			best = score
			found = true
		}
	}
	return best, found
}

// matchBookmark scores a bookmark candidate: the best of the title
// match and the penalised folder, URL and keyword matches.
func matchBookmark(bookmark domain.Bookmark, query string) (int, bool) {
	best, found := fuzzy.Match(bookmark.Title, query)

	consider := func(candidate string, penalty int) {
		score, ok := fuzzy.Match(candidate, query)
		if !ok {
			return
		}
		score -= penalty
		if !found || score > best {
			best = score
			found = true
		}
	}

	if bookmark.FolderPath != "" {
		consider(bookmark.FolderPath, BookmarkFolderPenalty)
	}
	consider(bookmark.URL, BookmarkURLPenalty)
	for _, keyword := range bookmark.Keywords {
		consider(keyword, BookmarkKeywordPenalty)
	}
	return best, found
}
