package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryInput is the input schema for the query tool.
type QueryInput struct {
	Text string `json:"text" jsonschema:"the partial text to match against applications and bookmarks"`
	Mode string `json:"mode,omitempty" jsonschema:"result filter: all, application, bookmark or search (default all)"`
}

// QueryOutput is the output schema for the query tool.
type QueryOutput struct {
	Results []QueryResultOutput `json:"results"`
	Count   int                 `json:"count"`
}

// QueryResultOutput represents a single ranked result.
type QueryResultOutput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Score    int    `json:"score"`
	Action   string `json:"action"`
}

// LaunchInput is the input schema for the launch tool.
type LaunchInput struct {
	ResultID string `json:"result_id" jsonschema:"the id of a result returned by the most recent query"`
	Elevated bool   `json:"elevated,omitempty" jsonschema:"request an elevated launch (executables only)"`
}

// LaunchOutput is the output schema for the launch tool.
type LaunchOutput struct {
	Launched bool   `json:"launched"`
	ResultID string `json:"result_id"`
}

// ReindexInput is the input schema for the reindex tool.
type ReindexInput struct {
	Target string `json:"target,omitempty" jsonschema:"what to rebuild: all, applications or bookmarks (default all)"`
}

// ReindexOutput is the output schema for the reindex tool.
type ReindexOutput struct {
	Applications int `json:"applications"`
	Bookmarks    int `json:"bookmarks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query",
		Description: "Rank applications and bookmarks against a text query",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "launch",
		Description: "Launch a result returned by the most recent query",
	}, s.handleLaunch)

	if s.ports.Index != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "reindex",
			Description: "Rebuild the application and bookmark catalogs",
		}, s.handleReindex)
	}
}

// handleQuery handles the query tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	results, err := s.ports.Query.Query(ctx, input.Text, input.Mode)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	output := QueryOutput{
		Results: make([]QueryResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = QueryResultOutput{
			ID:       results[i].ID,
			Title:    results[i].Title,
			Subtitle: results[i].Subtitle,
			Score:    results[i].Score,
			Action:   string(results[i].Action),
		}
	}
	return nil, output, nil
}

// handleLaunch handles the launch tool invocation.
func (s *Server) handleLaunch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LaunchInput,
) (*mcp.CallToolResult, LaunchOutput, error) {
	if err := s.ports.Action.Execute(ctx, input.ResultID, input.Elevated); err != nil {
		return nil, LaunchOutput{}, err
	}
	return nil, LaunchOutput{Launched: true, ResultID: input.ResultID}, nil
}

// handleReindex handles the reindex tool invocation.
func (s *Server) handleReindex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReindexInput,
) (*mcp.CallToolResult, ReindexOutput, error) {
	var out ReindexOutput
	switch input.Target {
	case "applications":
		out.Applications = s.ports.Index.RebuildApplications(ctx)
		out.Bookmarks = s.ports.Index.Status().Bookmarks
	case "bookmarks":
		out.Bookmarks = s.ports.Index.RebuildBookmarks(ctx)
		out.Applications = s.ports.Index.Status().Applications
	default:
		status := s.ports.Index.Rebuild(ctx)
		out.Applications = status.Applications
		out.Bookmarks = status.Bookmarks
	}
	return nil, out, nil
}
