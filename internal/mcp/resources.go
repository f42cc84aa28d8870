// ABOUTME: MCP resources exposing stored drafts by type and id.
// ABOUTME: Agents read research, outlines, and content via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/presskit/internal/store"
)

func (s *Server) registerResources() {
	// A single template covers every stored draft; the SDK handles listing.
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "presskit://draft/{type}/{id}",
			Name:        "Draft",
			Description: "Stored draft records: research, outline, or content by topic id",
			MIMEType:    "application/json",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// Parse URI: presskit://draft/{type}/{id}
	rest, ok := strings.CutPrefix(req.Params.URI, "presskit://draft/")
	if !ok {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}
	recordType, id, ok := strings.Cut(rest, "/")
	if !ok || recordType == "" || id == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	switch recordType {
	case store.TypeResearch, store.TypeOutline, store.TypeContent:
	default:
		return nil, fmt.Errorf("unknown draft type %q", recordType)
	}

	data, err := s.store.LoadRaw(recordType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft %s/%s: %w", recordType, id, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
