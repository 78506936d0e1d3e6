// Package service is the application layer between the transports (HTTP,
// WebSocket, MCP, CLI) and the maze packages.
//
// A Request names the grid size, an optional seed and whether to solve the
// maze. The service validates it against the configured limits, resolves a
// seed when none is given, generates the maze and optionally renders it.
// Rendered artifacts are kept in an LRU cache keyed by everything that
// determines their bytes, so replaying a seeded request is free.
//
// Usage:
//
//	cfg, _ := config.Load()
//	svc, _ := service.New(cfg)
//	art, err := svc.Render(ctx, service.Request{Width: 20, Height: 10}, service.FormatSVG)
package service
