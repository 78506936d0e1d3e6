package maze

import (
	"github.com/katalvlaran/lvlmaze/grid"
)

// Maze is a finished run: the grid, every erase event in union order and
// the run summary.
type Maze struct {
	Grid    *grid.Grid
	Events  []EraseEvent
	Summary Summary
}

// Generate builds a generator over g, runs it to completion and records the
// result. Any WithReporter option still receives the live run.
func Generate(g *grid.Grid, opts ...Option) (*Maze, error) {
	rec := &Recorder{}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	opts = append(opts, WithReporter(Tee(o.Reporter, rec)))

	gen, err := NewGenerator(g, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := gen.Run(); err != nil {
		return nil, err
	}
	return &Maze{Grid: g, Events: rec.Events, Summary: rec.Summary}, nil
}

// Removed returns the erased walls in union order.
func (m *Maze) Removed() []grid.Wall {
	out := make([]grid.Wall, len(m.Events))
	for i, ev := range m.Events {
		out[i] = ev.Wall
	}
	return out
}

// Passages returns, for every cell, the cells reachable through one erased
// wall. Neighbour lists are in union order.
// Complexity: O(C + E).
func (m *Maze) Passages() [][]int {
	adj := make([][]int, m.Grid.Cells())
	for _, ev := range m.Events {
		a, b := ev.Wall.Cell1, ev.Wall.Cell2
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	return adj
}

// Open reports whether the wall between cells a and b was erased.
func (m *Maze) Open(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for _, ev := range m.Events {
		if ev.Wall.Cell1 == a && ev.Wall.Cell2 == b {
			return true
		}
	}
	return false
}

// Replay feeds the recorded run to r as if it were happening live.
func (m *Maze) Replay(r Reporter) {
	r.Begin(m.Grid.Geometry())
	for _, ev := range m.Events {
		r.Erase(ev)
	}
	r.End(m.Summary)
}
