// Package mcp provides an MCP (Model Context Protocol) server adapter for Launcha.
// It enables AI assistants like Claude to query the local application and
// bookmark index and launch the results.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")

// ErrMissingActionService is returned when the action service is not provided.
var ErrMissingActionService = errors.New("mcp: action service is required")
