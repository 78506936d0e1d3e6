// Package grid defines the wall, geometry and option types together with
// the sentinel errors of the grid model.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension indicates a width or height below 1, or a grid too
// large for its cell, wall and node ids to fit in an int.
// No partial grid is ever built when it is returned.
var ErrInvalidDimension = errors.New("grid: invalid dimension")

// DefaultCanvas is the fixed drawing extent the whole maze is scaled into,
// regardless of aspect ratio.
const DefaultCanvas = 500.0

// Orientation tells which boundary a wall sits on.
type Orientation uint8

const (
	// Horizontal walls separate a cell from the cell directly below it.
	Horizontal Orientation = iota
	// Vertical walls separate a cell from its right neighbour in the same row.
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Wall is a candidate edge between two grid-adjacent cells.
// Cell1 is always the smaller id. Node1 and Node2 are the lattice corners
// the wall's drawn segment spans. Walls are plain values and never mutate.
type Wall struct {
	Cell1, Cell2 int
	Node1, Node2 int
	Orientation  Orientation
}

// String formats the wall as "c1-c2".
func (w Wall) String() string {
	return fmt.Sprintf("%d-%d", w.Cell1, w.Cell2)
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two canvas points.
type Segment struct {
	From, To Point
}

// Geometry is the part of a grid a renderer needs before generation starts:
// dimensions and the uniform scale factor.
type Geometry struct {
	Width, Height int
	Scale         float64
}

// Point maps a lattice node id to its canvas coordinate:
// ((node % (Width+1))·Scale, (node / (Width+1))·Scale).
// Complexity: O(1).
func (g Geometry) Point(node int) Point {
	stride := g.Width + 1
	return Point{
		X: float64(node%stride) * g.Scale,
		Y: float64(node/stride) * g.Scale,
	}
}

// CellCenter returns the canvas coordinate of the middle of cell id.
func (g Geometry) CellCenter(id int) Point {
	row, col := id/g.Width, id%g.Width
	return Point{
		X: (float64(col) + 0.5) * g.Scale,
		Y: (float64(row) + 0.5) * g.Scale,
	}
}

// Extent returns the canvas width and height actually covered by the grid.
func (g Geometry) Extent() (w, h float64) {
	return float64(g.Width) * g.Scale, float64(g.Height) * g.Scale
}

// Lines returns the full initial grid: Height+1 horizontal lines followed by
// Width+1 vertical lines, each spanning the whole grid.
// Complexity: O(Width + Height).
func (g Geometry) Lines() []Segment {
	w, h := g.Extent()
	lines := make([]Segment, 0, g.Width+g.Height+2)
	for i := 0; i <= g.Height; i++ {
		y := float64(i) * g.Scale
		lines = append(lines, Segment{From: Point{0, y}, To: Point{w, y}})
	}
	for j := 0; j <= g.Width; j++ {
		x := float64(j) * g.Scale
		lines = append(lines, Segment{From: Point{x, 0}, To: Point{x, h}})
	}
	return lines
}

// Option customizes grid construction.
type Option func(*options)

type options struct {
	canvas float64
}

// WithCanvas sets the drawing extent the grid is scaled into.
// Panics on extent <= 0: a meaningless constant is a programmer error.
func WithCanvas(extent float64) Option {
	if extent <= 0 {
		panic("grid: WithCanvas(extent<=0)")
	}
	return func(o *options) {
		o.canvas = extent
	}
}

// WallCount returns the closed-form number of interior walls of an m×n grid:
// 2·m·n − m − n. It returns 0 for dimensions New would reject.
func WallCount(m, n int) int {
	if m < 1 || n < 1 || !fits(m, n) {
		return 0
	}
	return 2*m*n - m - n
}

// fits reports whether 2·m·n and the (m+1)·(n+1) lattice nodes of an m×n
// grid stay within int. m and n must be positive.
func fits(m, n int) bool {
	if m > math.MaxInt/2/n {
		return false
	}
	return m < math.MaxInt/(n+1)
}
