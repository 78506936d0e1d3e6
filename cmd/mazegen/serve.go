package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inconshreveable/log15"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/server"
	"github.com/katalvlaran/lvlmaze/service"
	"github.com/katalvlaran/lvlmaze/transport/mcp"
)

// runServe starts the HTTP server and blocks until ctx is done or the
// process receives SIGINT or SIGTERM.
func runServe(ctx context.Context, cfg config.Config, log log15.Logger) error {
	svc, err := service.New(cfg)
	if err != nil {
		return err
	}
	handler := server.NewServer(svc, server.Options{
		DefaultWidth:  cfg.Width,
		DefaultHeight: cfg.Height,
		StepDelay:     cfg.StepDelay,
		MCP:           mcp.NewServer(svc, Version),
		Logger:        log.New("component", "http"),
	})
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // /ws streams can run long
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Addr,
			"api", "/api/maze", "ws", "/ws", "mcp", "/mcp")
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// runMCP serves the MCP tools on stdin and stdout. Nothing is logged, as
// stdout carries the protocol.
func runMCP(cfg config.Config) error {
	svc, err := service.New(cfg)
	if err != nil {
		return err
	}
	return mcp.NewServer(svc, Version).RunStdio()
}
