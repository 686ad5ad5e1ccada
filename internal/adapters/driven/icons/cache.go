package icons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/launcha-cli/internal/core/ports/driven"
	"github.com/custodia-labs/launcha-cli/internal/logger"
)

// Ensure Cache implements the interface.
var _ driven.IconRenderer = (*Cache)(nil)

// defaultLRUSize bounds the in-memory hot set.
const defaultLRUSize = 512

// Cache wraps an icon renderer with a two-level cache: an in-memory
// LRU in front of a SQLite table keyed by icon source and index.
type Cache struct {
	inner driven.IconRenderer
	hot   *lru.Cache[string, []byte]
	db    *sql.DB
	path  string
}

// NewCache creates a caching renderer around inner. If dataDir is
// empty, defaults to ~/.launcha/data/icons.db.
func NewCache(inner driven.IconRenderer, dataDir string) (*Cache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".launcha", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "icons.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening icon cache: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS icons (
		key         TEXT PRIMARY KEY,
		data        BLOB NOT NULL,
		rendered_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating icon cache schema: %w", err)
	}

	hot, err := lru.New[string, []byte](defaultLRUSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating icon LRU: %w", err)
	}

	return &Cache{
		inner: inner,
		hot:   hot,
		db:    db,
		path:  dbPath,
	}, nil
}

// Render returns the cached icon for path/index, rendering and caching
// it on a miss. Cache failures degrade to a direct render.
func (c *Cache) Render(ctx context.Context, path string, index int) ([]byte, error) {
	key := cacheKey(path, index)

	if data, ok := c.hot.Get(key); ok {
		return data, nil
	}

	if data, ok := c.lookup(ctx, key); ok {
		c.hot.Add(key, data)
		return data, nil
	}

	if c.inner == nil {
		return nil, nil
	}
	data, err := c.inner.Render(ctx, path, index)
	if err != nil {
		return nil, err
	}

	if len(data) > 0 {
		c.hot.Add(key, data)
		c.persist(ctx, key, data)
	}
	return data, nil
}

// Clear drops both cache levels.
func (c *Cache) Clear(ctx context.Context) error {
	c.hot.Purge()
	if _, err := c.db.ExecContext(ctx, `DELETE FROM icons`); err != nil {
		return fmt.Errorf("clearing icon cache: %w", err)
	}
	return nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the cache database file path.
func (c *Cache) Path() string {
	return c.path
}

func (c *Cache) lookup(ctx context.Context, key string) ([]byte, bool) {
	var data []byte
	err := c.db.QueryRowContext(ctx, `SELECT data FROM icons WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Debug("icon cache lookup failed for %s: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func (c *Cache) persist(ctx context.Context, key string, data []byte) {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO icons (key, data, rendered_at) VALUES (?, ?, ?)`,
		key, data, time.Now().Unix())
	if err != nil {
		logger.Debug("icon cache write failed for %s: %v", key, err)
	}
}

func cacheKey(path string, index int) string {
	return strings.ToLower(path) + "#" + strconv.Itoa(index)
}
