// Package maze defines events, summaries, reporters, options and sentinel
// errors for maze generation.
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned when no grid is supplied.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrInvariantViolation means the walls were exhausted before the cells
	// formed a single component. It is an internal-consistency failure.
	ErrInvariantViolation = errors.New("maze: internal invariant violated")

	// ErrAlreadyRun is returned by a second call to Run.
	ErrAlreadyRun = errors.New("maze: generator already ran")
)

// State is the generator's lifecycle position.
type State uint8

const (
	// StateRunning: more than one component remains.
	StateRunning State = iota
	// StateComplete: every cell is reachable from every other.
	StateComplete
)

// String returns "running" or "complete".
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// EraseEvent reports one removed wall. Seq is 1-based and follows the order
// in which unions succeeded. Segment is the wall's canvas line, Node1 to Node2.
type EraseEvent struct {
	Seq     int
	Wall    grid.Wall
	Segment grid.Segment
}

// Summary describes a finished run.
// Connections equals Cells−1 for every successful run; Rejected counts walls
// that were kept because their cells were already connected; Scanned is
// Connections+Rejected.
type Summary struct {
	Width, Height int
	Cells         int
	Walls         int
	Connections   int
	Rejected      int
	Scanned       int
	Seed          int64
}

// Reporter consumes a generation run. Implementations must not retain the
// generator or mutate shared state the generator owns; they only see values.
type Reporter interface {
	// Begin is called once with the grid geometry, before any Erase.
	Begin(geo grid.Geometry)
	// Erase is called once per removed wall, in union order.
	Erase(ev EraseEvent)
	// End is called once after the last Erase of a successful run.
	End(sum Summary)
}

// Nop is a Reporter that ignores everything.
type Nop struct{}

func (Nop) Begin(grid.Geometry) {}
func (Nop) Erase(EraseEvent)    {}
func (Nop) End(Summary)         {}

// Recorder is a Reporter that keeps the whole run in memory.
type Recorder struct {
	Geometry grid.Geometry
	Events   []EraseEvent
	Summary  Summary
	Done     bool
}

func (r *Recorder) Begin(geo grid.Geometry) {
	r.Geometry = geo
	r.Events = nil
	r.Done = false
}

func (r *Recorder) Erase(ev EraseEvent) { r.Events = append(r.Events, ev) }

func (r *Recorder) End(sum Summary) {
	r.Summary = sum
	r.Done = true
}

// tee fans one run out to several reporters in order.
type tee []Reporter

// Tee returns a Reporter that forwards every call to each of rs in order.
// Nil entries are skipped.
func Tee(rs ...Reporter) Reporter {
	out := make(tee, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (t tee) Begin(geo grid.Geometry) {
	for _, r := range t {
		r.Begin(geo)
	}
}

func (t tee) Erase(ev EraseEvent) {
	for _, r := range t {
		r.Erase(ev)
	}
}

func (t tee) End(sum Summary) {
	for _, r := range t {
		r.End(sum)
	}
}

// Option configures a Generator. Invalid values are recorded and surfaced as
// ErrOptionViolation by NewGenerator.
type Option func(*Options)

// Options holds the resolved generator configuration.
type Options struct {
	// Rand drives the shuffle. Nil means "seed from Seed or the clock".
	Rand *rand.Rand
	// Seed is used when Rand is nil and SeedSet is true.
	Seed    int64
	SeedSet bool
	// Order, if non-nil, replaces the shuffle with an explicit permutation of
	// wall indices into grid.Walls().
	Order []int
	// Reporter receives the run. Never nil after defaults.
	Reporter Reporter

	err error
}

// DefaultOptions returns options with a Nop reporter and a clock seed.
func DefaultOptions() Options {
	return Options{Reporter: Nop{}}
}

// WithSeed fixes the shuffle seed. Same seed, same grid ⇒ same maze.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.SeedSet = true
	}
}

// WithRand supplies the random source for the shuffle. The generator
// consumes it; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithOrder replaces the shuffle with an explicit wall order: order[k] is the
// index into grid.Walls() of the k-th wall to scan. It must be a permutation
// of [0, NumWalls); NewGenerator checks this.
func WithOrder(order []int) Option {
	return func(o *Options) {
		o.Order = append([]int(nil), order...)
	}
}

// WithReporter sets the consumer of geometry, erase events and summary.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithReporter(nil)", ErrOptionViolation)
			return
		}
		o.Reporter = r
	}
}
