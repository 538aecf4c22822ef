// Package mcp exposes the CampusNexus backend to AI agents over the Model
// Context Protocol.
package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/i18n"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Options sets defaults for tool calls that omit them.
type Options struct {
	Language string
	TopK     int
	Location *time.Location
}

// Server wraps an MCP server whose tools call the backend.
type Server struct {
	backend app.Backend
	opts    Options
	logger  *zap.Logger
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(backend app.Backend, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !i18n.IsSupported(opts.Language) {
		opts.Language = i18n.DefaultLanguage
	}
	if opts.TopK <= 0 {
		opts.TopK = 5
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	s := &Server{
		backend: backend,
		opts:    opts,
		logger:  logger,
	}

	s.mcp = server.NewMCPServer(
		"nexus",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askDocumentsTool, s.handleAskDocuments)
	s.mcp.AddTool(uploadDocumentTool, s.handleUploadDocument)
	s.mcp.AddTool(getAnalyticsTool, s.handleGetAnalytics)
	s.mcp.AddTool(getKnowledgeGraphTool, s.handleGetKnowledgeGraph)
	s.mcp.AddTool(getGovernanceTool, s.handleGetGovernance)
	s.mcp.AddTool(reviewDocumentTool, s.handleReviewDocument)
	s.mcp.AddTool(getHealthTool, s.handleGetHealth)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr or the log file.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
