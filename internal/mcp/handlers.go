package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/synapse-hq/synapse/internal/search"
)

// handleSearchDocuments performs semantic search over the document index.
func (s *Server) handleSearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	params := search.Params{
		Query:     query,
		Threshold: request.GetFloat("threshold", s.defaultThreshold),
		Limit:     request.GetInt("limit", s.defaultCount),
		Topic:     request.GetString("topic", ""),
		Project:   request.GetString("project", ""),
	}

	hits, err := s.planner.Search(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	resp := search.Aggregate(query, hits)
	if resp.TotalResults == 0 {
		return mcp.NewToolResultText("No results found. The index may be empty; run `synapse ingest` to add documents."), nil
	}

	return mcp.NewToolResultText(search.FormatGroups(resp)), nil
}

// handleIndexStats returns document catalog totals.
func (s *Server) handleIndexStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.registry.Stats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Indexed documents: %d\nChunks: %d\nTopics: %d\nProjects: %d\n",
		stats.Documents, stats.Chunks, stats.Topics, stats.Projects,
	)), nil
}
