package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/solve"
)

type cacheKey struct {
	width, height int
	seed          int64
	solve         bool
	format        Format
}

// Service implements MazeService.
type Service struct {
	cfg   config.Config
	cache *lru.Cache[cacheKey, *Artifact]
	clock func() time.Time
}

var _ MazeService = (*Service)(nil)

// New creates a service bound to cfg. The cache holds cfg.CacheSize
// artifacts.
func New(cfg config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cache, err := lru.New[cacheKey, *Artifact](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("service: creating cache: %w", err)
	}
	return &Service{cfg: cfg, cache: cache, clock: time.Now}, nil
}

// CacheLen reports the number of cached artifacts.
func (s *Service) CacheLen() int { return s.cache.Len() }

// check validates dimensions against the grid rules and the service limit.
func (s *Service) check(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("service: %w: got %dx%d, both must be at least 1", grid.ErrInvalidDimension, width, height)
	}
	if width > s.cfg.MaxDimension || height > s.cfg.MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, width, height, s.cfg.MaxDimension)
	}
	return nil
}

func (s *Service) seedFor(req Request) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	return s.clock().UnixNano()
}

// Generate builds the maze described by req.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := s.check(req.Width, req.Height); err != nil {
		return nil, err
	}
	seed := s.seedFor(req)
	return s.generate(ctx, req, seed)
}

func (s *Service) generate(ctx context.Context, req Request, seed int64) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := grid.New(req.Width, req.Height, grid.WithCanvas(s.cfg.Canvas))
	if err != nil {
		return nil, err
	}
	m, err := maze.Generate(g, maze.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("service: generating %dx%d seed %d: %w", req.Width, req.Height, seed, err)
	}
	res := &Result{ID: uuid.New(), Seed: seed, Maze: m}
	if req.Solve {
		if res.Solution, err = solve.Solution(m, solve.WithContext(ctx)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Render generates the maze described by req and encodes it in format.
// Requests are cached by size, seed, solve flag and format. A cache hit
// carries the ID of the run that produced the artifact. Every call returns
// its own copy, so callers may modify the Body.
func (s *Service) Render(ctx context.Context, req Request, format Format) (*Artifact, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	if err := s.check(req.Width, req.Height); err != nil {
		return nil, err
	}
	seed := s.seedFor(req)
	key := cacheKey{req.Width, req.Height, seed, req.Solve, format}
	if art, ok := s.cache.Get(key); ok {
		return art.clone(true), nil
	}

	res, err := s.generate(ctx, req, seed)
	if err != nil {
		return nil, err
	}
	body, err := Encode(res, format)
	if err != nil {
		return nil, err
	}
	art := &Artifact{
		ID:          res.ID,
		Seed:        seed,
		Format:      format,
		ContentType: format.ContentType(),
		Body:        body,
	}
	s.cache.Add(key, art)
	return art.clone(false), nil
}

// Encode renders a result in the given format. Text output is uncoloured.
func Encode(res *Result, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJSON:
		err = json.NewEncoder(&buf).Encode(res.View())
	case FormatSVG:
		err = render.WriteSVG(&buf, res.Maze, res.Solution)
	case FormatPNG:
		err = render.WritePNG(&buf, res.Maze, res.Solution)
	case FormatText:
		err = render.WriteText(&buf, res.Maze, res.Solution, render.Plain())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("service: encoding %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Describe reports the wall count and scale of a width×height grid.
func (s *Service) Describe(width, height int) (*GridInfo, error) {
	if err := s.check(width, height); err != nil {
		return nil, err
	}
	g, err := grid.New(width, height, grid.WithCanvas(s.cfg.Canvas))
	if err != nil {
		return nil, err
	}
	return &GridInfo{
		Width:  width,
		Height: height,
		Cells:  g.Cells(),
		Walls:  g.NumWalls(),
		Canvas: s.cfg.Canvas,
		Scale:  g.Scale(),
	}, nil
}
