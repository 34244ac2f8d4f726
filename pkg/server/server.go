// Package server provides the HTTP server shared by guardrail's API
// endpoints: routing, rate limiting, request IDs, health probes, metrics
// exposure, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/time/rate"
)

// Server wraps http.Server with guardrail's middleware stack.
type Server struct {
	cfg      *Config
	name     string
	version  string
	handlers map[string]http.HandlerFunc
	limiter  *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// ServerOption is a functional option for configuring Server instances.
type ServerOption func(*Server)

// WithName sets the service name reported on the default route.
func WithName(name string) ServerOption {
	return func(s *Server) { s.name = name }
}

// WithVersion sets the service version reported on the default route.
func WithVersion(version string) ServerOption {
	return func(s *Server) { s.version = version }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) ServerOption {
	return func(s *Server) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithHandler registers API handlers by route. Registered handlers run
// behind the middleware stack (request ID, rate limiting).
func WithHandler(handlers map[string]http.HandlerFunc) ServerOption {
	return func(s *Server) {
		for route, h := range handlers {
			s.handlers[route] = h
		}
	}
}

// New creates a Server with the provided options.
func New(opts ...ServerOption) *Server {
	s := &Server{
		cfg:      DefaultConfig(),
		name:     "guardrail",
		version:  "dev",
		handlers: map[string]http.HandlerFunc{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limiter = rate.NewLimiter(s.cfg.RateLimit, s.cfg.RateLimitBurst)
	return s
}

// Run starts the server and blocks until the context is canceled or a
// termination signal arrives, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.setReady(true)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.setReady(false)
	slog.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}
