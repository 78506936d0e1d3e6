package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/service"
	"github.com/katalvlaran/lvlmaze/solve"
)

type drawOptions struct {
	width, height int
	maxDimension  int
	canvas        float64
	seed          *int64
	format        string
	out           string
	solve         bool
	plain         bool
}

// runDraw validates the size, carves the maze and writes it out.
// Dimension errors are returned before anything is generated.
func runDraw(ctx context.Context, opts drawOptions, stdout io.Writer, log log15.Logger) error {
	if opts.canvas <= 0 {
		return fmt.Errorf("canvas must be positive, got %v", opts.canvas)
	}
	if err := checkSize(opts.width, opts.height, opts.maxDimension); err != nil {
		return err
	}
	g, err := grid.New(opts.width, opts.height, grid.WithCanvas(opts.canvas))
	if err != nil {
		return err
	}
	write, err := writerFor(opts)
	if err != nil {
		return err
	}

	mopts := []maze.Option{maze.WithReporter(&logReporter{log: log})}
	if opts.seed != nil {
		mopts = append(mopts, maze.WithSeed(*opts.seed))
	}
	m, err := maze.Generate(g, mopts...)
	if err != nil {
		return err
	}

	var path []int
	if opts.solve {
		if path, err = solve.Solution(m, solve.WithContext(ctx)); err != nil {
			return err
		}
		log.Debug("solution found", "cells", len(path))
	}

	out := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := write(out, m, path); err != nil {
		return err
	}
	if opts.out != "" {
		log.Info("maze written", "file", opts.out, "format", opts.format)
	}
	return nil
}

type writeFunc func(io.Writer, *maze.Maze, []int) error

// writerFor picks the renderer for the requested format.
func writerFor(opts drawOptions) (writeFunc, error) {
	switch opts.format {
	case "text", "txt", "":
		var ropts []render.Option
		if opts.plain || opts.out != "" {
			ropts = append(ropts, render.Plain())
		}
		return func(w io.Writer, m *maze.Maze, path []int) error {
			return render.WriteText(w, m, path, ropts...)
		}, nil
	case "svg":
		return func(w io.Writer, m *maze.Maze, path []int) error {
			return render.WriteSVG(w, m, path)
		}, nil
	case "png":
		return func(w io.Writer, m *maze.Maze, path []int) error {
			return render.WritePNG(w, m, path)
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want text, svg or png)", opts.format)
}

// checkSize applies the configured dimension cap, as the service does.
func checkSize(width, height, limit int) error {
	if width > limit || height > limit {
		return fmt.Errorf("%w: %dx%d exceeds %d (see %s)",
			service.ErrTooLarge, width, height, limit, config.EnvMaxDimension)
	}
	return nil
}

// runWalls prints every interior wall in construction order.
func runWalls(width, height, maxDimension int, canvas float64, w io.Writer) error {
	if canvas <= 0 {
		return fmt.Errorf("canvas must be positive, got %v", canvas)
	}
	if err := checkSize(width, height, maxDimension); err != nil {
		return err
	}
	g, err := grid.New(width, height, grid.WithCanvas(canvas))
	if err != nil {
		return err
	}
	for i, wall := range g.Walls() {
		seg := g.Segment(wall)
		fmt.Fprintf(w, "%d\t%s\t%s\tnodes %d,%d\t(%v,%v)-(%v,%v)\n",
			i, wall, wall.Orientation, wall.Node1, wall.Node2,
			seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	}
	return nil
}
