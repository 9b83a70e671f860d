package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/cleanslice/docs-mcp/internal/gateway"
)

const (
	// ServerName is the MCP server name
	ServerName = "docs-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	gateway *gateway.Gateway
}

// NewServer creates a new MCP server instance backed by the given gateway
func NewServer(gw *gateway.Gateway) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		gateway: gw,
	}
	s.registerTools()

	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool(), s.handleSearchDocs)
	s.mcp.AddTool(getStartedTool(), s.handleGetStarted)
	s.mcp.AddTool(listCategoriesTool(), s.handleListCategories)
	s.mcp.AddTool(readDocTool(), s.handleReadDoc)
	s.mcp.AddTool(rescanDocsTool(), s.handleRescanDocs)
}
