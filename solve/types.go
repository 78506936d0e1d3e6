// Package solve provides options and error definitions for walking mazes.
package solve

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for maze walks.
var (
	// ErrNilMaze is returned if a nil maze (or one without a grid) is passed.
	ErrNilMaze = errors.New("solve: maze is nil")

	// ErrCellNotFound is returned when a cell id lies outside the grid.
	ErrCellNotFound = errors.New("solve: cell not found")

	// ErrNotSpanning is returned when the erased walls leave a cell unreachable.
	ErrNotSpanning = errors.New("solve: maze does not span every cell")

	// ErrCycle is returned when the erased walls contain a cycle.
	ErrCycle = errors.New("solve: maze contains a cycle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Option configures a walk via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when the walk starts.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued, with its distance from the
	// start. A non-nil error aborts the walk and is returned wrapped.
	OnVisit func(cell, depth int) error

	err error
}

// DefaultOptions returns background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: WithContext(nil)", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit sets the visit hook.
func WithOnVisit(fn func(cell, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithOnVisit(nil)", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// Result is the outcome of a BFS. Depth and Parent are indexed by cell id;
// unreached cells have Depth −1, and the start and unreached cells have
// Parent −1.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether cell was visited.
func (r *Result) Reached(cell int) bool {
	return cell >= 0 && cell < len(r.Depth) && r.Depth[cell] >= 0
}

// PathTo rebuilds the route from Start to cell using parent links.
// It returns nil for unreached cells.
func (r *Result) PathTo(cell int) []int {
	if !r.Reached(cell) {
		return nil
	}
	path := make([]int, r.Depth[cell]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cell
		cell = r.Parent[cell]
	}
	return path
}
