// Package mcp exposes the chart renderer, live readings, facts and the
// chat demo to MCP clients over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/monitor"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the oceanai tools.
type Server struct {
	monitor   *monitor.Monitor
	index     *facts.Index
	responder chat.Answerer
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(mon *monitor.Monitor, index *facts.Index, responder chat.Answerer) *Server {
	s := &Server{
		monitor:   mon,
		index:     index,
		responder: responder,
	}

	s.mcp = server.NewMCPServer(
		"oceanai",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(renderChartTool, s.handleRenderChart)
	s.mcp.AddTool(getReadingsTool, s.handleGetReadings)
	s.mcp.AddTool(listFactsTool, s.handleListFacts)
	s.mcp.AddTool(searchFactsTool, s.handleSearchFacts)
	s.mcp.AddTool(chatTool, s.handleChat)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
