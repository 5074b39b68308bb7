// Package mcp exposes the document index to MCP clients over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/synapse-hq/synapse/internal/registry"
	"github.com/synapse-hq/synapse/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes document search tools.
type Server struct {
	planner          *search.Planner
	registry         *registry.Registry
	defaultThreshold float64
	defaultCount     int
	mcp              *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(planner *search.Planner, reg *registry.Registry, defaultThreshold float64, defaultCount int) *Server {
	s := &Server{
		planner:          planner,
		registry:         reg,
		defaultThreshold: defaultThreshold,
		defaultCount:     defaultCount,
	}

	s.mcp = server.NewMCPServer(
		"synapse",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocumentsTool, s.handleSearchDocuments)
	s.mcp.AddTool(indexStatsTool, s.handleIndexStats)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
