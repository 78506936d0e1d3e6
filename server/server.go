package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/inconshreveable/log15"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/service"
)

// Options configures a Server.
type Options struct {
	// DefaultWidth and DefaultHeight fill in missing query parameters.
	DefaultWidth  int
	DefaultHeight int

	// StepDelay paces /ws erase messages unless the client sets delay.
	StepDelay time.Duration

	// MCP handles POST /mcp when set.
	MCP http.Handler

	// Logger receives request and stream logs. Defaults to a discarding
	// logger.
	Logger log15.Logger
}

// Server represents the HTTP API server.
type Server struct {
	service service.MazeService
	opts    Options
	log     log15.Logger
	router  *mux.Router
}

// NewServer creates a new API server.
func NewServer(svc service.MazeService, opts Options) *Server {
	if opts.DefaultWidth < 1 {
		opts.DefaultWidth = 32
	}
	if opts.DefaultHeight < 1 {
		opts.DefaultHeight = 32
	}
	logger := opts.Logger
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	s := &Server{
		service: svc,
		opts:    opts,
		log:     logger,
		router:  mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.Use(s.logRequests)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/maze", s.handleMaze).Methods("GET")
	api.HandleFunc("/maze.{format:svg|png|txt}", s.handleMaze).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket).Methods("GET")
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	if s.opts.MCP != nil {
		s.router.Handle("/mcp", s.opts.MCP)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// errParam marks a malformed query parameter.
var errParam = errors.New("invalid parameter")

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errParam),
		errors.Is(err, grid.ErrInvalidDimension),
		errors.Is(err, service.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// parseRequest reads width, height, seed and solve from the query string.
func (s *Server) parseRequest(q url.Values) (service.Request, error) {
	req := service.Request{Width: s.opts.DefaultWidth, Height: s.opts.DefaultHeight}
	var err error
	if v := q.Get("width"); v != "" {
		if req.Width, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("%w: width=%q", errParam, v)
		}
	}
	if v := q.Get("height"); v != "" {
		if req.Height, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("%w: height=%q", errParam, v)
		}
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("%w: seed=%q", errParam, v)
		}
		req.Seed = &seed
	}
	if v := q.Get("solve"); v != "" {
		if req.Solve, err = strconv.ParseBool(v); err != nil {
			return req, fmt.Errorf("%w: solve=%q", errParam, v)
		}
	}
	return req, nil
}

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	format, err := service.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	req, err := s.parseRequest(r.URL.Query())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	art, err := s.service.Render(r.Context(), req, format)
	if err != nil {
		s.log.Warn("render failed", "width", req.Width, "height", req.Height, "format", format, "err", err)
		respondError(w, statusFor(err), err.Error())
		return
	}

	cache := "MISS"
	if art.Cached {
		cache = "HIT"
	}
	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("X-Maze-Id", art.ID.String())
	w.Header().Set("X-Maze-Seed", strconv.FormatInt(art.Seed, 10))
	w.Header().Set("X-Cache", cache)
	w.WriteHeader(http.StatusOK)
	w.Write(art.Body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
