package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/oceanai/internal/chart"
	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/ocean"
	"github.com/ziadkadry99/oceanai/internal/vectordb"
)

// Bounds for ad-hoc charts.
const (
	defaultWidth  = 600
	defaultHeight = 300
	maxDimension  = 2000
)

// handleRenderChart returns a chart as a base64 PNG image.
func (s *Server) handleRenderChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kindStr, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: kind"), nil
	}
	kind, err := ocean.ParseKind(kindStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	spec, _ := ocean.SpecFor(kind)

	samples := request.GetFloatSlice("samples", nil)
	var surface *chart.Surface
	if len(samples) == 0 {
		live, ok := s.monitor.Surface(kind)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no live chart for %s", kind)), nil
		}
		surface = live
	} else {
		width := request.GetInt("width", defaultWidth)
		height := request.GetInt("height", defaultHeight)
		if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
			return mcp.NewToolResultError(fmt.Sprintf("width and height must be between 1 and %d", maxDimension)), nil
		}
		scratch, err := chart.NewSurface(spec.SurfaceID, width, height)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		color := request.GetString("color", spec.Color)
		if err := s.monitor.Renderer().Draw(scratch, spec.Label, samples, color); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
		}
		surface = scratch
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	caption := fmt.Sprintf("%s (%dx%d)", spec.Label, surface.Width(), surface.Height())
	return mcp.NewToolResultImage(caption, base64.StdEncoding.EncodeToString(buf.Bytes()), "image/png"), nil
}

// handleGetReadings returns the monitor snapshot as JSON.
func (s *Server) handleGetReadings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(s.monitor.Snapshot(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding readings: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListFacts lists the static fact tables.
func (s *Server) handleListFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source := request.GetString("source", "")
	var sb strings.Builder
	if source == "" || source == string(vectordb.DocTypeFact) {
		sb.WriteString("Facts:\n")
		for i, f := range facts.Facts {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, f))
		}
	}
	if source == "" || source == string(vectordb.DocTypeGallery) {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Gallery:\n")
		for i, g := range facts.Gallery {
			sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, g.Icon, g.Text))
		}
	}
	if sb.Len() == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("unknown source %q", source)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchFacts performs semantic search over the fact index.
func (s *Server) handleSearchFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	source := vectordb.DocumentType(request.GetString("source", ""))

	text, err := s.index.Text(ctx, query, limit, source)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// handleChat answers a question the way the chat widget does.
func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}
	question, ok := chat.Normalize(message)
	if !ok {
		return mcp.NewToolResultError("message is blank"), nil
	}
	return mcp.NewToolResultText(s.responder.Answer(ctx, question)), nil
}
