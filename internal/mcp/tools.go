package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchDocumentsTool defines the search_documents MCP tool.
var searchDocumentsTool = mcp.NewTool("search_documents",
	mcp.WithDescription("Search the indexed documents semantically. Returns matching text chunks grouped by source file."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of chunks to return (default 10)"),
	),
	mcp.WithNumber("threshold",
		mcp.Description("Minimum similarity in [0, 1]; only chunks scoring strictly above it are returned (default 0.5)"),
	),
	mcp.WithString("topic",
		mcp.Description("Only return chunks tagged with this topic"),
	),
	mcp.WithString("project",
		mcp.Description("Only return chunks tagged with this project"),
	),
)

// indexStatsTool defines the index_stats MCP tool.
var indexStatsTool = mcp.NewTool("index_stats",
	mcp.WithDescription("Get document index statistics: document, chunk, topic and project counts."),
)
