// ABOUTME: MCP server setup for the water intake tracker.
// ABOUTME: Wraps MCP server around the tracker service for one profile.
package mcp

import (
	"context"

	"github.com/harperreed/waterlog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access for a single
// local profile (the external ID the CLI uses).
type Server struct {
	mcpServer  *mcp.Server
	svc        *tracker.Service
	externalID string
}

// NewServer creates a new MCP server over the given tracker service.
func NewServer(svc *tracker.Service, externalID string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "waterlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:  mcpServer,
		svc:        svc,
		externalID: externalID,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
