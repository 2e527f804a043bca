// Package api exposes the calculators over HTTP with per-client rate
// limiting and optional response caching.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config controls the HTTP server.
type Config struct {
	Addr       string
	RateLimit  int
	RateWindow time.Duration
}

// Server owns the listener, the middleware chain and the rate limiter.
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	logger     *zap.Logger
}

// NewServer builds the middleware chain around h.
func NewServer(cfg Config, h *Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	var handler http.Handler = h.Routes()
	handler = RateLimitMiddleware(limiter, handler)
	handler = LoggingMiddleware(logger, handler)
	handler = RequestIDMiddleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.limiter.Stop()
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-serverErr
	s.logger.Info("server stopped")
	return nil
}

// Close stops the server immediately.
func (s *Server) Close() error {
	s.limiter.Stop()
	return s.httpServer.Close()
}
