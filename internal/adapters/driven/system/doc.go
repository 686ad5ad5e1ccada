// Package system provides OS-backed implementations of the launch and
// shell driven ports: process launching, packaged-app activation, URL
// opening, keyword expansion and the no-op shell services used on
// hosts without a launcher surface.
package system
