package render

import (
	"errors"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors for renderers.
var (
	// ErrNilMaze is returned by the Write* helpers for a nil maze.
	ErrNilMaze = errors.New("render: maze is nil")

	// ErrNotStarted is recorded when an event arrives before Begin.
	ErrNotStarted = errors.New("render: event before Begin")

	// ErrClosed is recorded when an event arrives after End.
	ErrClosed = errors.New("render: event after End")
)

// Styles holds the lipgloss styles used by the text renderer.
type Styles struct {
	Wall lipgloss.Style
	Path lipgloss.Style
}

// DefaultStyles returns muted walls and a highlighted solution.
func DefaultStyles() Styles {
	return Styles{
		Wall: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray
		Path: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")). // Muted yellow
			Bold(true),
	}
}

// Option configures a renderer.
type Option func(*options)

type options struct {
	stroke float64
	margin float64
	plain  bool
	styles Styles
}

func defaultOptions() options {
	return options{stroke: -1, margin: -1, styles: DefaultStyles()}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStroke sets the wall thickness in canvas units. By default it is a
// fifth of the cell size, clamped to [1, 4].
// Panics if px <= 0.
func WithStroke(px float64) Option {
	if px <= 0 {
		panic("render: WithStroke(px<=0)")
	}
	return func(o *options) { o.stroke = px }
}

// WithMargin sets the blank border around the grid. Defaults to the stroke.
// Panics if px < 0.
func WithMargin(px float64) Option {
	if px < 0 {
		panic("render: WithMargin(px<0)")
	}
	return func(o *options) { o.margin = px }
}

// Plain disables colour in the text renderer.
func Plain() Option {
	return func(o *options) { o.plain = true }
}

// WithStyles replaces the text renderer styles.
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

// strokeFor resolves the automatic stroke for a geometry.
func (o options) strokeFor(geo grid.Geometry) float64 {
	if o.stroke > 0 {
		return o.stroke
	}
	return math.Max(1, math.Min(4, geo.Scale/5))
}

func (o options) marginFor(stroke float64) float64 {
	if o.margin >= 0 {
		return o.margin
	}
	return stroke
}

// overlayer is a reporter that also accepts a solution path.
type overlayer interface {
	maze.Reporter
	Overlay(path []int)
}

// replay feeds a finished maze and an optional path to r.
func replay(m *maze.Maze, r overlayer, path []int) error {
	if m == nil || m.Grid == nil {
		return ErrNilMaze
	}
	r.Begin(m.Grid.Geometry())
	for _, ev := range m.Events {
		r.Erase(ev)
	}
	if len(path) > 0 {
		r.Overlay(path)
	}
	r.End(m.Summary)
	return nil
}

// inset shortens an axis-aligned segment by d at both ends so an erase does
// not bite into the perpendicular walls meeting at its nodes. Segments no
// longer than 2d are returned unchanged.
func inset(s grid.Segment, d float64) grid.Segment {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	length := math.Hypot(dx, dy)
	if length <= 2*d {
		return s
	}
	ux, uy := dx/length*d, dy/length*d
	return grid.Segment{
		From: grid.Point{X: s.From.X + ux, Y: s.From.Y + uy},
		To:   grid.Point{X: s.To.X - ux, Y: s.To.Y - uy},
	}
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
