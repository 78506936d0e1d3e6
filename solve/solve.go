package solve

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	queue []int
	res   *Result
}

// BFS explores m from start through erased walls.
// Returns ErrNilMaze, ErrCellNotFound, ErrOptionViolation, the context
// error on cancellation, or the hook's error wrapped.
func BFS(m *maze.Maze, start int, opts ...Option) (*Result, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.Grid.Contains(start) {
		return nil, fmt.Errorf("%w: start %d", ErrCellNotFound, start)
	}

	n := m.Grid.Cells()
	w := &walker{
		adj:   m.Passages(),
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks cell visited at depth d with the given parent.
func (w *walker) enqueue(cell, d, parent int) {
	w.res.Depth[cell] = d
	w.res.Parent[cell] = parent
	w.queue = append(w.queue, cell)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cell := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[cell]
		w.res.Order = append(w.res.Order, cell)
		if err := w.opts.OnVisit(cell, d); err != nil {
			return fmt.Errorf("solve: OnVisit error at cell %d: %w", cell, err)
		}
		for _, nb := range w.adj[cell] {
			if w.res.Depth[nb] < 0 {
				w.enqueue(nb, d+1, cell)
			}
		}
	}
	return nil
}

// Path returns the cells on the route from one cell to another, both ends
// included. In a perfect maze the route is unique.
func Path(m *maze.Maze, from, to int, opts ...Option) ([]int, error) {
	res, err := BFS(m, from, opts...)
	if err != nil {
		return nil, err
	}
	if !m.Grid.Contains(to) {
		return nil, fmt.Errorf("%w: goal %d", ErrCellNotFound, to)
	}
	path := res.PathTo(to)
	if path == nil {
		return nil, fmt.Errorf("%w: cell %d unreachable from %d", ErrNotSpanning, to, from)
	}
	return path, nil
}

// Solution returns the route between opposite corners: the first cell
// (top-left) and the last cell (bottom-right).
func Solution(m *maze.Maze, opts ...Option) ([]int, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}
	return Path(m, 0, m.Grid.Cells()-1, opts...)
}

// Verify checks the perfect-maze property independently of how the maze
// was generated: exactly Cells−1 erased walls, all reachable from cell 0.
// A connected graph with V−1 edges is a tree, so no cycle can hide.
func Verify(m *maze.Maze) error {
	if m == nil || m.Grid == nil {
		return ErrNilMaze
	}
	cells := m.Grid.Cells()
	if len(m.Events) > cells-1 {
		return fmt.Errorf("%w: %d erased walls for %d cells", ErrCycle, len(m.Events), cells)
	}
	res, err := BFS(m, 0)
	if err != nil {
		return err
	}
	if len(res.Order) != cells {
		return fmt.Errorf("%w: reached %d of %d cells", ErrNotSpanning, len(res.Order), cells)
	}
	return nil
}
