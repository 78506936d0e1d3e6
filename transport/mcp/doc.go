// Package mcp exposes maze generation to AI agents over the Model Context
// Protocol.
//
// MCP Tools:
//   - generate_maze: carve a maze and return it as text art with its run
//     summary, optionally with the corner-to-corner solution marked.
//   - describe_grid: report cell count, interior wall count and drawing
//     scale for a grid size without generating anything.
//
// Transport Modes:
//   - Stdio: RunStdio, for local MCP clients.
//   - HTTP: Server implements http.Handler for a POST /mcp endpoint.
//
// Usage:
//
//	srv := mcp.NewServer(svc, "1.0.0")
//	http.Handle("/mcp", srv)
//	// or
//	srv.RunStdio()
package mcp
