package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// NewPagelensMCPServer creates an MCP server exposing the page auditor to
// AI assistants over stdio.
func NewPagelensMCPServer(logger zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"pagelens",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, logger)
	registerResources(s)
	return s
}
