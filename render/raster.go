package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Colours used by the raster renderer.
var (
	WallColor  = color.RGBA{0, 0, 0, 255}
	FloorColor = color.RGBA{255, 255, 255, 255}
	PathColor  = color.RGBA{220, 40, 40, 255}
)

// Raster paints a maze into an RGBA image, one pixel per canvas unit.
type Raster struct {
	opts   options
	img    *image.RGBA
	geo    grid.Geometry
	stroke float64
	margin float64
	closed bool
	err    error
}

// NewRaster returns an empty raster renderer. The image is allocated on
// Begin.
func NewRaster(opts ...Option) *Raster {
	return &Raster{opts: newOptions(opts)}
}

// Image returns the canvas, or nil before Begin.
func (r *Raster) Image() *image.RGBA { return r.img }

// Err returns the first event-order error.
func (r *Raster) Err() error { return r.err }

func (r *Raster) ready() bool {
	switch {
	case r.err != nil:
		return false
	case r.img == nil:
		r.err = ErrNotStarted
		return false
	case r.closed:
		r.err = ErrClosed
		return false
	}
	return true
}

// Begin allocates the canvas, fills it with the floor colour and paints
// every grid line.
func (r *Raster) Begin(geo grid.Geometry) {
	if r.err != nil {
		return
	}
	r.geo = geo
	r.stroke = r.opts.strokeFor(geo)
	r.margin = r.opts.marginFor(r.stroke)
	w, h := geo.Extent()
	bounds := image.Rect(0, 0,
		int(math.Ceil(w+2*r.margin)), int(math.Ceil(h+2*r.margin)))
	r.img = image.NewRGBA(bounds)
	draw.Draw(r.img, bounds, &image.Uniform{FloorColor}, image.Point{}, draw.Src)
	for _, l := range geo.Lines() {
		r.fill(l, WallColor, true)
	}
}

// Erase paints the wall segment with the floor colour.
func (r *Raster) Erase(ev maze.EraseEvent) {
	if !r.ready() {
		return
	}
	r.fill(inset(ev.Segment, r.stroke/2), FloorColor, false)
}

// Overlay paints the solution between consecutive cell centres.
func (r *Raster) Overlay(path []int) {
	if !r.ready() {
		return
	}
	for i := 1; i < len(path); i++ {
		r.fill(grid.Segment{
			From: r.geo.CellCenter(path[i-1]),
			To:   r.geo.CellCenter(path[i]),
		}, PathColor, true)
	}
}

// End closes the canvas for further events.
func (r *Raster) End(maze.Summary) {
	if r.ready() {
		r.closed = true
	}
}

// PNG encodes the canvas.
func (r *Raster) PNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	if r.img == nil {
		return ErrNotStarted
	}
	return png.Encode(w, r.img)
}

// fill paints an axis-aligned segment thickened to the stroke width.
// Capped segments also extend by half a stroke past both ends, which
// closes the corners where grid lines meet.
func (r *Raster) fill(s grid.Segment, c color.Color, capped bool) {
	half := r.stroke / 2
	x0, x1 := math.Min(s.From.X, s.To.X), math.Max(s.From.X, s.To.X)
	y0, y1 := math.Min(s.From.Y, s.To.Y), math.Max(s.From.Y, s.To.Y)
	if y0 == y1 || capped {
		y0, y1 = y0-half, y1+half
	}
	if x0 == x1 || capped {
		x0, x1 = x0-half, x1+half
	}
	rect := image.Rect(
		int(math.Round(x0+r.margin)), int(math.Round(y0+r.margin)),
		int(math.Round(x1+r.margin)), int(math.Round(y1+r.margin)),
	)
	draw.Draw(r.img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
}

// WritePNG renders a finished maze, with an optional solution path, as PNG.
func WritePNG(w io.Writer, m *maze.Maze, path []int, opts ...Option) error {
	r := NewRaster(opts...)
	if err := replay(m, r, path); err != nil {
		return err
	}
	return r.PNG(w)
}
