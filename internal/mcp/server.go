// ABOUTME: MCP server exposing the publishing toolkit to AI agents.
// ABOUTME: Provides tools, resources, and prompts over stdio.

package mcp

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/presskit/internal/config"
	"github.com/harper/presskit/internal/media"
	"github.com/harper/presskit/internal/mcperr"
	"github.com/harper/presskit/internal/publisher"
	"github.com/harper/presskit/internal/store"
	"github.com/harper/presskit/internal/wp"
)

type Server struct {
	server *mcp.Server
	cfg    *config.Config
	wp     *wp.Client
	pub    *publisher.Publisher
	ingest *media.Ingester
	store  *store.Store
	log    *log.Logger
}

func NewServer(cfg *config.Config, client *wp.Client, pub *publisher.Publisher, ingester *media.Ingester, st *store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		cfg:    cfg,
		wp:     client,
		pub:    pub,
		ingest: ingester,
		store:  st,
		log:    logger.With("component", "mcp"),
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.ServerName,
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// errorResult renders any failure as the uniform JSON error payload. The
// protocol-level error stays nil so the agent sees the structured message.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: mcperr.Format(err)},
		},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(mcperr.Wrap("unknown_error", "encoding result", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
}
