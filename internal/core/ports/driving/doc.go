// Package driving defines the inbound ports of the launcha core,
// consumed by the CLI, TUI and MCP adapters.
package driving
