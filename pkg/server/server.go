// Package server exposes report collection over HTTP.
//
// The server is single-purpose: it transports reports and never mutates
// host state. Routes are a service descriptor at /, liveness and
// readiness probes, the Prometheus registry, and whatever API handlers
// the caller registers with WithHandler. Registered handlers run behind
// the middleware chain (request IDs, API version negotiation, rate
// limiting, request logging).
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server serves the report API over HTTP.
type Server struct {
	cfg      *Config
	name     string
	version  string
	handlers map[string]http.HandlerFunc

	limiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithName sets the service name reported by the descriptor route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion sets the service version reported by the descriptor route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithHandler registers API handlers by route. Registered handlers are
// wrapped with the middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for path, handler := range handlers {
			s.handlers[path] = handler
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// New creates a server with the given options applied over defaults.
func New(opts ...Option) *Server {
	s := &Server{
		cfg:      DefaultConfig(),
		handlers: make(map[string]http.HandlerFunc),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.limiter = rate.NewLimiter(s.cfg.RateLimit, s.cfg.RateLimitBurst)

	return s
}

// Run starts the HTTP server and blocks until the context is canceled,
// a termination signal arrives, or the listener fails. Shutdown drains
// in-flight requests within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(s.cfg.Address, strconv.Itoa(s.cfg.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	slog.Debug("server configuration",
		slog.String("address", addr),
		slog.Float64("rate_limit", float64(s.cfg.RateLimit)),
		slog.Int("rate_limit_burst", s.cfg.RateLimitBurst),
		slog.String("log_level", s.cfg.LogLevel),
	)

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("listening", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		s.mu.Lock()
		s.ready = false
		s.mu.Unlock()

		slog.Info("shutting down", slog.Duration("drain_timeout", s.cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
