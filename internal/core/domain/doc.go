// Package domain holds the core types of the launcha engine: the
// application and bookmark catalogs, search results, pending actions
// and launcher settings. It has no dependencies on adapters or
// infrastructure.
package domain
