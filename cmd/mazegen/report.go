package main

import (
	"github.com/inconshreveable/log15"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// logReporter turns generator events into log lines: one debug line per
// union and an info line when the maze is complete.
type logReporter struct {
	log log15.Logger
}

func (r *logReporter) Begin(geo grid.Geometry) {
	r.log.Debug("grid drawn", "width", geo.Width, "height", geo.Height, "scale", geo.Scale)
}

func (r *logReporter) Erase(ev maze.EraseEvent) {
	r.log.Debug("cells connected", "seq", ev.Seq, "cells", ev.Wall.String())
}

func (r *logReporter) End(sum maze.Summary) {
	r.log.Info("maze completed",
		"connections", sum.Connections,
		"rejected", sum.Rejected,
		"scanned", sum.Scanned,
		"seed", sum.Seed)
}
