// Package staticsrc implements the application source ports from a
// JSON manifest file. It serves hosts where the native shortcut,
// registry and package sources are unavailable, and makes index
// behaviour reproducible in development.
package staticsrc
