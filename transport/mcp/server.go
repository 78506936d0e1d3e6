package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/lvlmaze/service"
)

// Server wraps an MCP server whose tools call a maze service.
type Server struct {
	svc       service.MazeService
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers every tool.
func NewServer(svc service.MazeService, version string) *Server {
	s := &Server{svc: svc}
	s.mcpServer = server.NewMCPServer(
		"lvlmaze",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`lvlmaze - random perfect maze generator

A perfect maze has exactly one route between any two cells. Cells are
numbered row by row from 0 at the top-left corner.

AVAILABLE TOOLS:
- generate_maze: build a width x height maze; pass seed to reproduce one, solve to mark the route from the top-left to the bottom-right cell
- describe_grid: count cells and interior walls for a size`),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

// RunStdio serves MCP over standard input and output until EOF.
func (s *Server) RunStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "generate_maze",
		Description: "Generate a random perfect maze and return it as text art",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Number of columns (at least 1)",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Number of rows (at least 1)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Seed for a reproducible maze (optional)",
				},
				"solve": map[string]interface{}{
					"type":        "boolean",
					"description": "Mark the path from the first to the last cell",
				},
			},
			Required: []string{"width", "height"},
		},
	}, s.handleGenerateMaze)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_grid",
		Description: "Describe a grid: cells, interior walls and drawing scale",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Number of columns",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Number of rows",
				},
			},
			Required: []string{"width", "height"},
		},
	}, s.handleDescribeGrid)
}

func (s *Server) handleGenerateMaze(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	width, height, err := dimensions(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req := service.Request{Width: width, Height: height}
	req.Solve, _ = args["solve"].(bool)
	if raw, ok := args["seed"]; ok && raw != nil {
		seed, err := int64Arg(raw)
		if err != nil {
			return mcp.NewToolResultError("seed: " + err.Error()), nil
		}
		req.Seed = &seed
	}

	res, err := s.svc.Generate(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	art, err := service.Encode(res, service.FormatText)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMaze(res, art)), nil
}

func (s *Server) handleDescribeGrid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	width, height, err := dimensions(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := s.svc.Describe(width, height)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Grid %dx%d: %d cells, %d interior walls, scale %s on a %s canvas\n",
		info.Width, info.Height, info.Cells, info.Walls,
		strconv.FormatFloat(info.Scale, 'f', -1, 64),
		strconv.FormatFloat(info.Canvas, 'f', -1, 64),
	)), nil
}

// ServeHTTP answers JSON-RPC MCP messages posted to the endpoint.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	response := s.mcpServer.HandleMessage(r.Context(), body)

	w.Header().Set("Content-Type", "application/json")
	responseData, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.Write(responseData)
}

func formatMaze(res *service.Result, art []byte) string {
	var b strings.Builder
	sum := res.Maze.Summary
	fmt.Fprintf(&b, "Maze %dx%d (seed %d, id %s)\n", sum.Width, sum.Height, res.Seed, res.ID)
	fmt.Fprintf(&b, "Connections: %d, rejected unions: %d, walls scanned: %d of %d\n\n",
		sum.Connections, sum.Rejected, sum.Scanned, sum.Walls)
	b.Write(art)
	if len(res.Solution) > 0 {
		steps := make([]string, len(res.Solution))
		for i, c := range res.Solution {
			steps[i] = strconv.Itoa(c)
		}
		fmt.Fprintf(&b, "\nSolution (%d cells): %s\n", len(steps), strings.Join(steps, " -> "))
	}
	return b.String()
}

func dimensions(args map[string]interface{}) (width, height int, err error) {
	w, err := int64Arg(args["width"])
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := int64Arg(args["height"])
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	return int(w), int(h), nil
}

// int64Arg accepts JSON numbers and numeric strings.
func int64Arg(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, errors.New("missing")
	}
	return 0, fmt.Errorf("unsupported type %T", raw)
}
