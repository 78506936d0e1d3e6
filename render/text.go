package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Text builds terminal art of a maze, one "+---+" box per cell, and writes
// it on End.
type Text struct {
	w      io.Writer
	opts   options
	width  int
	rows   [][]rune
	closed bool
	err    error
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer, opts ...Option) *Text {
	return &Text{w: w, opts: newOptions(opts)}
}

// Err returns the first event-order or write error.
func (t *Text) Err() error { return t.err }

func (t *Text) ready() bool {
	switch {
	case t.err != nil:
		return false
	case t.rows == nil:
		t.err = ErrNotStarted
		return false
	case t.closed:
		t.err = ErrClosed
		return false
	}
	return true
}

// Begin lays out a closed box around every cell.
func (t *Text) Begin(geo grid.Geometry) {
	if t.err != nil {
		return
	}
	t.width = geo.Width
	t.rows = make([][]rune, 2*geo.Height+1)
	for y := range t.rows {
		row := make([]rune, 4*geo.Width+1)
		for x := range row {
			switch {
			case y%2 == 0 && x%4 == 0:
				row[x] = '+'
			case y%2 == 0:
				row[x] = '-'
			case x%4 == 0:
				row[x] = '|'
			default:
				row[x] = ' '
			}
		}
		t.rows[y] = row
	}
}

// Erase opens the wall between the event's two cells.
func (t *Text) Erase(ev maze.EraseEvent) {
	if !t.ready() {
		return
	}
	r, c := ev.Wall.Cell1/t.width, ev.Wall.Cell1%t.width
	if ev.Wall.Orientation == grid.Horizontal {
		y := 2*r + 2
		for x := 4*c + 1; x <= 4*c+3; x++ {
			t.rows[y][x] = ' '
		}
		return
	}
	t.rows[2*r+1][4*c+4] = ' '
}

// Overlay marks every cell on the path.
func (t *Text) Overlay(path []int) {
	if !t.ready() {
		return
	}
	for _, id := range path {
		r, c := id/t.width, id%t.width
		t.rows[2*r+1][4*c+2] = '*'
	}
}

// End writes the drawing.
func (t *Text) End(maze.Summary) {
	if !t.ready() {
		return
	}
	t.closed = true
	_, t.err = io.WriteString(t.w, t.String())
}

// String renders the current drawing, styled unless Plain was given.
func (t *Text) String() string {
	var b strings.Builder
	for _, row := range t.rows {
		if t.opts.plain {
			b.WriteString(string(row))
		} else {
			t.styleRow(&b, row)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// styleRow renders runs of wall, path and open characters with one style
// call per run.
func (t *Text) styleRow(b *strings.Builder, row []rune) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && classOf(row[i]) == classOf(row[start]) {
			continue
		}
		run := string(row[start:i])
		switch classOf(row[start]) {
		case classWall:
			b.WriteString(t.opts.styles.Wall.Render(run))
		case classPath:
			b.WriteString(t.opts.styles.Path.Render(run))
		default:
			b.WriteString(run)
		}
		start = i
	}
}

type runeClass uint8

const (
	classOpen runeClass = iota
	classWall
	classPath
)

func classOf(r rune) runeClass {
	switch r {
	case '+', '-', '|':
		return classWall
	case '*':
		return classPath
	}
	return classOpen
}

// WriteText renders a finished maze, with an optional solution path, to w.
func WriteText(w io.Writer, m *maze.Maze, path []int, opts ...Option) error {
	t := NewText(w, opts...)
	if err := replay(m, t, path); err != nil {
		return err
	}
	return t.Err()
}
