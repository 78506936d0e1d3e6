package grid

import (
	"fmt"
)

// Grid is an immutable m×n cell grid together with its wall collection.
type Grid struct {
	width, height int
	scale         float64
	walls         []Wall
}

// New builds the grid model for width m and height n.
// Returns ErrInvalidDimension (wrapped with the offending values) if either
// dimension is below 1 or the wall and node counts would overflow int;
// nothing is allocated in that case.
//
// Steps:
//  1. Validate dimensions and their product.
//  2. Derive scale = canvas / max(m, n).
//  3. Enumerate horizontal walls: every cell i with a cell i+m below it.
//  4. Enumerate vertical walls row by row, skipping the last column.
//
// Complexity: O(m·n) time and memory.
func New(m, n int, opts ...Option) (*Grid, error) {
	// 1. Validate dimensions and their product.
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%w: got %dx%d, both must be at least 1", ErrInvalidDimension, m, n)
	}
	if !fits(m, n) {
		return nil, fmt.Errorf("%w: %dx%d overflows int", ErrInvalidDimension, m, n)
	}
	o := options{canvas: DefaultCanvas}
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Derive scale; reserve exactly WallCount slots.
	g := &Grid{
		width:  m,
		height: n,
		scale:  o.canvas / float64(max(m, n)),
		walls:  make([]Wall, 0, WallCount(m, n)),
	}

	// 3. Horizontal walls: i and i+m, for every row but the last.
	for i := 0; i < m*(n-1); i++ {
		below := i + m
		node1 := below/m + below
		g.walls = append(g.walls, Wall{
			Cell1:       i,
			Cell2:       below,
			Node1:       node1,
			Node2:       node1 + 1,
			Orientation: Horizontal,
		})
	}

	// 4. Vertical walls: j and j+1 within a row; the last column has no right neighbour.
	for row := 0; row < n; row++ {
		for col := 0; col < m-1; col++ {
			j := row*m + col
			after := j + 1
			node1 := after/m + after
			g.walls = append(g.walls, Wall{
				Cell1:       j,
				Cell2:       after,
				Node1:       node1,
				Node2:       node1 + m + 1,
				Orientation: Vertical,
			})
		}
	}

	return g, nil
}

// Width returns m, the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns n, the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells returns m·n.
func (g *Grid) Cells() int { return g.width * g.height }

// Scale returns the uniform canvas units per cell.
func (g *Grid) Scale() float64 { return g.scale }

// Geometry returns the dimensions and scale a renderer needs.
func (g *Grid) Geometry() Geometry {
	return Geometry{Width: g.width, Height: g.height, Scale: g.scale}
}

// Walls returns a copy of the wall collection in construction order:
// all horizontal walls, then all vertical walls.
// Complexity: O(W) where W = WallCount(m, n).
func (g *Grid) Walls() []Wall {
	out := make([]Wall, len(g.walls))
	copy(out, g.walls)
	return out
}

// NumWalls returns the size of the wall collection without copying it.
func (g *Grid) NumWalls() int { return len(g.walls) }

// Wall returns the i-th wall in construction order.
// The second result is false when i is out of range.
func (g *Grid) Wall(i int) (Wall, bool) {
	if i < 0 || i >= len(g.walls) {
		return Wall{}, false
	}
	return g.walls[i], true
}

// Contains reports whether id is a valid cell id.
func (g *Grid) Contains(id int) bool {
	return id >= 0 && id < g.Cells()
}

// RowCol converts a cell id to its row-major position.
// Complexity: O(1).
func (g *Grid) RowCol(id int) (row, col int) {
	return id / g.width, id % g.width
}

// CellID converts a row-major position back to a cell id.
// Complexity: O(1).
func (g *Grid) CellID(row, col int) int {
	return row*g.width + col
}

// Neighbors returns the grid-adjacent cells of id in N, W, E, S order.
// It returns nil for ids outside the grid.
func (g *Grid) Neighbors(id int) []int {
	if !g.Contains(id) {
		return nil
	}
	row, col := g.RowCol(id)
	nbrs := make([]int, 0, 4)
	if row > 0 {
		nbrs = append(nbrs, id-g.width)
	}
	if col > 0 {
		nbrs = append(nbrs, id-1)
	}
	if col < g.width-1 {
		nbrs = append(nbrs, id+1)
	}
	if row < g.height-1 {
		nbrs = append(nbrs, id+g.width)
	}
	return nbrs
}

// Point maps a lattice node id to canvas coordinates.
func (g *Grid) Point(node int) Point {
	return g.Geometry().Point(node)
}

// Segment returns the canvas segment a wall spans, Node1 to Node2.
func (g *Grid) Segment(w Wall) Segment {
	geo := g.Geometry()
	return Segment{From: geo.Point(w.Node1), To: geo.Point(w.Node2)}
}

// CellCenter returns the canvas coordinate of the middle of a cell.
func (g *Grid) CellCenter(id int) Point {
	return g.Geometry().CellCenter(id)
}
