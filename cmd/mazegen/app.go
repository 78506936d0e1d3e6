package main

import (
	"context"
	"io"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/lvlmaze/config"
)

// newApp builds the command tree with flag defaults taken from cfg.
func newApp(cfg config.Config, stdout, stderr io.Writer) *cli.Command {
	sizeFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Value: cfg.Width, Usage: "number of columns"},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Value: cfg.Height, Usage: "number of rows"},
			&cli.FloatFlag{Name: "canvas", Value: cfg.Canvas, Usage: "drawing extent of the longer side"},
		}
	}

	draw := &cli.Command{
		Name:  "draw",
		Usage: "carve a maze and print it",
		Flags: append(sizeFlags(),
			&cli.Int64Flag{Name: "seed", Value: cfg.Seed, Usage: "seed for a reproducible maze (random when unset)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "text, svg or png"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write to a file instead of stdout"},
			&cli.BoolFlag{Name: "solve", Usage: "mark the route from the first to the last cell"},
			&cli.BoolFlag{Name: "plain", Usage: "disable colour in text output"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := drawOptions{
				width:        cmd.Int("width"),
				height:       cmd.Int("height"),
				maxDimension: cfg.MaxDimension,
				canvas:       cmd.Float("canvas"),
				format:       cmd.String("format"),
				out:          cmd.String("out"),
				solve:        cmd.Bool("solve"),
				plain:        cmd.Bool("plain"),
			}
			if cmd.IsSet("seed") || cfg.SeedSet {
				seed := cmd.Int64("seed")
				opts.seed = &seed
			}
			return runDraw(ctx, opts, stdout, newLogger(cmd, cfg, stderr))
		},
	}

	return &cli.Command{
		Name:      "mazegen",
		Usage:     "generate random perfect mazes",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "log every erased wall"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, Usage: "crit, error, warn, info or debug"},
		},
		DefaultCommand: "draw",
		Commands: []*cli.Command{
			draw,
			{
				Name:  "walls",
				Usage: "list the interior walls of a grid",
				Flags: sizeFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWalls(cmd.Int("width"), cmd.Int("height"), cfg.MaxDimension, cmd.Float("canvas"), stdout)
				},
			},
			{
				Name:  "serve",
				Usage: "run the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: cfg.Addr, Usage: "listen address"},
					&cli.DurationFlag{Name: "step-delay", Value: cfg.StepDelay, Usage: "pause between /ws erase messages"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					c := cfg
					c.Addr = cmd.String("addr")
					c.StepDelay = cmd.Duration("step-delay")
					return runServe(ctx, c, newLogger(cmd, cfg, stderr))
				},
			},
			{
				Name:  "mcp",
				Usage: "serve MCP tools over stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runMCP(cfg)
				},
			},
		},
	}
}

// newLogger builds a logfmt logger on w filtered by --log-level, lowered to
// debug by --verbose.
func newLogger(cmd *cli.Command, cfg config.Config, w io.Writer) log15.Logger {
	lvl := cfg.Level()
	if parsed, err := log15.LvlFromString(cmd.String("log-level")); err == nil {
		lvl = parsed
	}
	if cmd.Bool("verbose") {
		lvl = log15.LvlDebug
	}
	logger := log15.New("app", "mazegen")
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.LogfmtFormat())))
	return logger
}
