// Command mazegen generates random perfect mazes.
//
// Subcommands:
//
//	draw   carve a maze and print it as text, SVG or PNG (default)
//	walls  list the interior walls of a grid with their lattice nodes
//	serve  run the HTTP API, WebSocket stream and /mcp endpoint
//	mcp    serve the MCP tools over stdio
//
// Defaults come from MAZE_* environment variables and an optional .env file;
// flags override them. A maze that cannot be completed exits with status 3.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Version of the mazegen command.
const Version = "1.0.0"

// Exit statuses.
const (
	exitOK        = 0
	exitError     = 1
	exitInvariant = 3
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(exitError)
	}
	app := newApp(cfg, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, maze.ErrInvariantViolation):
		return exitInvariant
	}
	return exitError
}
