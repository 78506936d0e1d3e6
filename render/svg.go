package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// SVG streams a maze drawing to an io.Writer.
//
// The first write error is kept and every later call becomes a no-op; check
// Err once the run is over.
type SVG struct {
	w      io.Writer
	opts   options
	geo    grid.Geometry
	stroke float64
	began  bool
	closed bool
	err    error
}

// NewSVG returns an SVG renderer writing to w.
func NewSVG(w io.Writer, opts ...Option) *SVG {
	return &SVG{w: w, opts: newOptions(opts)}
}

// Err returns the first error met while rendering.
func (s *SVG) Err() error { return s.err }

func (s *SVG) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// ready records ErrNotStarted or ErrClosed and reports whether an event may
// be drawn.
func (s *SVG) ready() bool {
	switch {
	case s.err != nil:
		return false
	case !s.began:
		s.err = ErrNotStarted
		return false
	case s.closed:
		s.err = ErrClosed
		return false
	}
	return true
}

// Begin writes the document header and the full grid in black.
func (s *SVG) Begin(geo grid.Geometry) {
	if s.err != nil {
		return
	}
	if s.began {
		s.err = fmt.Errorf("%w: Begin called twice", ErrClosed)
		return
	}
	s.began = true
	s.geo = geo
	s.stroke = s.opts.strokeFor(geo)
	margin := s.opts.marginFor(s.stroke)
	w, h := geo.Extent()
	cw, ch := w+2*margin, h+2*margin

	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(cw), num(ch), num(cw), num(ch))
	s.printf(`<rect width="%s" height="%s" fill="white"/>`+"\n", num(cw), num(ch))
	s.printf(`<g transform="translate(%s %s)" stroke-width="%s" fill="none">`+"\n",
		num(margin), num(margin), num(s.stroke))
	for _, l := range geo.Lines() {
		s.line(l, `stroke="black" stroke-linecap="square"`)
	}
}

// Erase strokes the wall segment in white.
func (s *SVG) Erase(ev maze.EraseEvent) {
	if !s.ready() {
		return
	}
	s.line(inset(ev.Segment, s.stroke/2), `stroke="white"`)
}

// Overlay draws a polyline through the centres of the given cells.
func (s *SVG) Overlay(path []int) {
	if !s.ready() || len(path) == 0 {
		return
	}
	pts := make([]string, len(path))
	for i, id := range path {
		p := s.geo.CellCenter(id)
		pts[i] = num(p.X) + "," + num(p.Y)
	}
	s.printf(`<polyline points="%s" stroke="red" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		strings.Join(pts, " "))
}

// End records the run summary as a comment and closes the document.
func (s *SVG) End(sum maze.Summary) {
	if !s.ready() {
		return
	}
	s.closed = true
	s.printf("<!-- %dx%d connections=%d rejected=%d seed=%d -->\n",
		sum.Width, sum.Height, sum.Connections, sum.Rejected, sum.Seed)
	s.printf("</g>\n</svg>\n")
}

func (s *SVG) line(seg grid.Segment, attrs string) {
	s.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
		num(seg.From.X), num(seg.From.Y), num(seg.To.X), num(seg.To.Y), attrs)
}

// WriteSVG renders a finished maze, with an optional solution path, to w.
func WriteSVG(w io.Writer, m *maze.Maze, path []int, opts ...Option) error {
	s := NewSVG(w, opts...)
	if err := replay(m, s, path); err != nil {
		return err
	}
	return s.Err()
}
