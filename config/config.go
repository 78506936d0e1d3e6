// Package config loads launcher and server settings from .env files and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed
// or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvWidth        = "MAZE_WIDTH"
	EnvHeight       = "MAZE_HEIGHT"
	EnvSeed         = "MAZE_SEED"
	EnvCanvas       = "MAZE_CANVAS"
	EnvAddr         = "MAZE_ADDR"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
	EnvCacheSize    = "MAZE_CACHE_SIZE"
	EnvMaxDimension = "MAZE_MAX_DIMENSION"
	EnvStepDelay    = "MAZE_STEP_DELAY"
)

// Config holds the application's configuration values.
type Config struct {
	Width        int           // Columns of a generated maze
	Height       int           // Rows of a generated maze
	Seed         int64         // Fixed seed, meaningful only when SeedSet
	SeedSet      bool          // Whether MAZE_SEED was given
	Canvas       float64       // Drawing extent of the longer grid side
	Addr         string        // Listen address for the HTTP server
	LogLevel     string        // log15 level name
	CacheSize    int           // Rendered artifacts kept by the service
	MaxDimension int           // Largest width or height the service and CLI accept
	StepDelay    time.Duration // Pause between erase events on /ws
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:        32,
		Height:       32,
		Canvas:       grid.DefaultCanvas,
		Addr:         ":8080",
		LogLevel:     "info",
		CacheSize:    128,
		MaxDimension: 256,
		StepDelay:    10 * time.Millisecond,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment, then builds a Config from the MAZE_* variables on top of
// Default. Missing files are skipped; variables already set in the process
// win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	c := Default()
	var err error
	if c.Width, err = envInt(EnvWidth, c.Width); err != nil {
		return Config{}, err
	}
	if c.Height, err = envInt(EnvHeight, c.Height); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, v)
		}
		c.SeedSet = true
	}
	if v, ok := os.LookupEnv(EnvCanvas); ok {
		if c.Canvas, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvCanvas, v)
		}
	}
	c.Addr = envString(EnvAddr, c.Addr)
	c.LogLevel = envString(EnvLogLevel, c.LogLevel)
	if c.CacheSize, err = envInt(EnvCacheSize, c.CacheSize); err != nil {
		return Config{}, err
	}
	if c.MaxDimension, err = envInt(EnvMaxDimension, c.MaxDimension); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvStepDelay); ok {
		if c.StepDelay, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvStepDelay, v)
		}
	}
	return c, c.Validate()
}

// Validate checks ranges. Non-positive dimensions are reported as
// grid.ErrInvalidDimension, everything else as ErrInvalidValue.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("config: %w: got %dx%d", grid.ErrInvalidDimension, c.Width, c.Height)
	}
	switch {
	case c.Canvas <= 0:
		return fmt.Errorf("%w: canvas %v must be positive", ErrInvalidValue, c.Canvas)
	case c.CacheSize < 1:
		return fmt.Errorf("%w: cache size %d must be positive", ErrInvalidValue, c.CacheSize)
	case c.MaxDimension < 1:
		return fmt.Errorf("%w: max dimension %d must be positive", ErrInvalidValue, c.MaxDimension)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: step delay %v is negative", ErrInvalidValue, c.StepDelay)
	}
	if _, err := log15.LvlFromString(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidValue, c.LogLevel)
	}
	return nil
}

// Level returns the configured log15 level, falling back to info.
func (c Config) Level() log15.Lvl {
	lvl, err := log15.LvlFromString(c.LogLevel)
	if err != nil {
		return log15.LvlInfo
	}
	return lvl
}

// envString retrieves the value of an environment variable or returns a default value if not set.
func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// envInt retrieves an integer environment variable or returns def if not set.
func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, key, v)
	}
	return n, nil
}
