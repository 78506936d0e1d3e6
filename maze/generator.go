package maze

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/dsu"
	"github.com/katalvlaran/lvlmaze/grid"
)

// Generator owns the state of one generation run: the shuffled wall
// sequence, the disjoint set over cells and the counters. Nothing is shared
// between generators; build one per maze.
type Generator struct {
	grid     *grid.Grid
	reporter Reporter
	walls    []grid.Wall // scan order, fixed at construction
	seed     int64

	sets  *dsu.DisjointSet
	state State
	ran   bool

	connections int
	rejected    int
}

// NewGenerator prepares a run over g.
//
// Steps:
//  1. Validate g and options.
//  2. Copy the wall collection and fix its scan order: explicit WithOrder
//     permutation, else a Fisher–Yates shuffle from the resolved source.
//  3. Create one singleton component per cell.
//
// Complexity: O(W + C).
func NewGenerator(g *grid.Grid, opts ...Option) (*Generator, error) {
	// 1. Validate grid and options.
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Copy the walls and fix their scan order.
	walls := g.Walls()
	var seed int64
	if o.Order != nil {
		var err error
		if walls, err = orderWalls(walls, o.Order); err != nil {
			return nil, err
		}
	} else {
		r, s := resolveRand(o)
		shuffleWalls(walls, r)
		seed = s
	}

	// 3. One singleton component per cell.
	sets, err := dsu.New(g.Cells())
	if err != nil {
		return nil, err
	}

	return &Generator{
		grid:     g,
		reporter: o.Reporter,
		walls:    walls,
		seed:     seed,
		sets:     sets,
		state:    StateRunning,
	}, nil
}

// State reports StateRunning until the run has joined every cell.
func (gen *Generator) State() State { return gen.state }

// Order returns a copy of the wall scan order.
func (gen *Generator) Order() []grid.Wall {
	return append([]grid.Wall(nil), gen.walls...)
}

// Run scans the walls once, erasing every wall whose union succeeds, until
// a single component remains.
//
// The loop index is bounded by the wall count: if the walls run out with
// more than one component left, ErrInvariantViolation is returned and End is
// not reported.
//
// Steps:
//  1. Refuse a second run.
//  2. Report the geometry.
//  3. Union walls in scan order while more than one component remains.
//  4. Mark complete and report the summary.
//
// Complexity: O(W·α(C)).
func (gen *Generator) Run() (Summary, error) {
	// 1. Refuse a second run.
	if gen.ran {
		return Summary{}, ErrAlreadyRun
	}
	gen.ran = true

	// 2. Report the geometry.
	geo := gen.grid.Geometry()
	gen.reporter.Begin(geo)

	// 3. Scan; the index never passes the wall count.
	i := 0
	for gen.sets.Count() > 1 {
		if i >= len(gen.walls) {
			return gen.summary(i), fmt.Errorf("%w: %d components left after scanning all %d walls",
				ErrInvariantViolation, gen.sets.Count(), len(gen.walls))
		}
		gen.union(gen.walls[i], geo)
		i++
	}
	// 4. Mark complete and report the summary.
	gen.state = StateComplete

	sum := gen.summary(i)
	gen.reporter.End(sum)
	return sum, nil
}

// union joins the two cells of w. On success the wall is reported erased.
func (gen *Generator) union(w grid.Wall, geo grid.Geometry) bool {
	if !gen.sets.Union(w.Cell1, w.Cell2) {
		gen.rejected++
		return false
	}
	gen.connections++
	gen.reporter.Erase(EraseEvent{
		Seq:     gen.connections,
		Wall:    w,
		Segment: grid.Segment{From: geo.Point(w.Node1), To: geo.Point(w.Node2)},
	})
	return true
}

func (gen *Generator) summary(scanned int) Summary {
	return Summary{
		Width:       gen.grid.Width(),
		Height:      gen.grid.Height(),
		Cells:       gen.grid.Cells(),
		Walls:       len(gen.walls),
		Connections: gen.connections,
		Rejected:    gen.rejected,
		Scanned:     scanned,
		Seed:        gen.seed,
	}
}
