// Package render draws mazes from the event stream of a generator run.
//
// Every renderer implements maze.Reporter, so the same value can be handed
// to maze.WithReporter for a live run or fed a finished maze via the
// Write* helpers. Renderers only see grid.Geometry and erase events: they
// never touch the disjoint set or the wall order.
//
//   - SVG streams elements to an io.Writer as events arrive: the full grid
//     in black on Begin, one white stroke per erased wall, the closing tag
//     on End. Write errors are sticky and reported by Err.
//   - Raster paints into an *image.RGBA and encodes it as PNG.
//   - Text builds "+---+" terminal art, coloured with lipgloss unless the
//     Plain option is given.
//
// Each renderer accepts an optional solution path (cell ids) through
// Overlay, which must be called after the last erase and before End.
package render
