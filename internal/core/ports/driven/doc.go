// Package driven defines the outbound ports of the launcha core:
// OS collaborators (shortcut resolution, registry enumeration, package
// listing, icon rendering, launch primitives), catalog storage and
// settings persistence. Adapters implement these interfaces.
package driven
