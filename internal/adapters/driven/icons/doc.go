// Package icons provides a caching icon renderer.
//
// Icon extraction is the slowest step of an application index rebuild,
// so rendered icons are cached at two levels: an in-memory LRU for the
// hot set and a SQLite table that survives restarts. The SQLite cache
// uses modernc.org/sqlite, a pure Go driver that requires no CGO.
//
// By default, the cache database is stored at ~/.launcha/data/icons.db
package icons
