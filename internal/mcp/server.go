// Package mcp exposes the growth calculators and validators as MCP tools
// over stdio, so agent clients can call them without shelling out.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer builds the MCP server with all growth tools registered.
func NewServer(version string) *server.MCPServer {
	srv := server.NewMCPServer(
		"growthkit",
		version,
		server.WithToolCapabilities(true),
	)
	RegisterTools(srv)
	return srv
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func ServeStdio(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}
