package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors returned by the service.
var (
	// ErrTooLarge is returned when a dimension exceeds the configured maximum.
	ErrTooLarge = errors.New("service: maze too large")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("service: unknown format")
)

// MazeService defines the maze operations offered to transports.
type MazeService interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Render(ctx context.Context, req Request, format Format) (*Artifact, error)
	Describe(width, height int) (*GridInfo, error)
}

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatText Format = "txt"
)

// ParseFormat maps a name or file extension (with or without the dot) to
// a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "":
		return FormatJSON, nil
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "txt", "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatText:
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Request describes one maze to build. A nil Seed asks the service to pick
// one; the chosen value is reported back.
type Request struct {
	Width  int
	Height int
	Seed   *int64
	Solve  bool
}

// Result is a generated maze.
type Result struct {
	ID       uuid.UUID
	Seed     int64
	Maze     *maze.Maze
	Solution []int
}

// View is the JSON shape of a Result.
type View struct {
	ID          string   `json:"id"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Seed        int64    `json:"seed"`
	Walls       int      `json:"walls"`
	Connections int      `json:"connections"`
	Rejected    int      `json:"rejected"`
	Scanned     int      `json:"scanned"`
	Removed     [][2]int `json:"removed"`
	Solution    []int    `json:"solution,omitempty"`
}

// View flattens the result for JSON transports.
func (r *Result) View() View {
	s := r.Maze.Summary
	removed := make([][2]int, len(r.Maze.Events))
	for i, ev := range r.Maze.Events {
		removed[i] = [2]int{ev.Wall.Cell1, ev.Wall.Cell2}
	}
	return View{
		ID:          r.ID.String(),
		Width:       s.Width,
		Height:      s.Height,
		Seed:        r.Seed,
		Walls:       s.Walls,
		Connections: s.Connections,
		Rejected:    s.Rejected,
		Scanned:     s.Scanned,
		Removed:     removed,
		Solution:    r.Solution,
	}
}

// Artifact is a rendered maze. ID names the generation run that produced
// Body; repeated requests served from the cache share it.
type Artifact struct {
	ID          uuid.UUID
	Seed        int64
	Format      Format
	ContentType string
	Body        []byte
	Cached      bool
}

// clone returns a deep copy marked with cached.
func (a *Artifact) clone(cached bool) *Artifact {
	out := *a
	out.Body = append([]byte(nil), a.Body...)
	out.Cached = cached
	return &out
}

// GridInfo summarises a grid without generating a maze on it.
type GridInfo struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Cells  int     `json:"cells"`
	Walls  int     `json:"walls"`
	Canvas float64 `json:"canvas"`
	Scale  float64 `json:"scale"`
}
