// Package rpcserver implements the admin JSON-RPC endpoint of a running xbwd
// server.
package rpcserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	pkgName = "github.com/xbridge-witness/xbwd/internal/rpcserver"
	// default server shutdown timeout once the top-level context is cancelled
	shutdownTimeout = 8 * time.Second
	maxRequestSize  = 1 << 20
)

// Default admin request rate limit.
const (
	defaultRateLimit = rate.Limit(20)
	defaultBurst     = 40
)

// InfoService provides the result of the server_info method.
type InfoService interface {
	ServerInfo(context.Context) (map[string]any, error)
}

// Server handles admin requests.
// This object should not be constructed by itself, only via New().
type Server struct {
	log     *slog.Logger
	info    InfoService
	stop    func()
	limiter *rate.Limiter
}

// Option performs optional configuration on Server objects during
// initialization, and is passed to New().
type Option func(*Server)

// WithRateLimit sets the rate at which requests are accepted. Requests over
// the limit are answered with a slowDown error.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(r, burst)
	}
}

// New returns a new Server. The stop function is called when a stop request
// is received.
func New(log *slog.Logger, info InfoService, stop func(), options ...Option) *Server {
	s := Server{
		log:     log,
		info:    info,
		stop:    stop,
		limiter: rate.NewLimiter(defaultRateLimit, defaultBurst),
	}
	for _, option := range options {
		option(&s)
	}
	return &s
}

// Serve accepts admin requests on l until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := http.Server{
		Handler:      s,
		ReadTimeout:  16 * time.Second,
		WriteTimeout: 16 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		// As soon as the top level context is cancelled, shut down the server.
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			s.log.Warn("couldn't shutdown rpc server cleanly", slog.Any("error", err))
		}
	}()
	s.log.Info("rpc server listening", slog.String("addr", l.Addr().String()))
	if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("rpc server: %v", err)
	}
	// Serve returns as soon as Shutdown is called, so wait for in-flight
	// requests such as stop to be answered.
	<-shutdownDone
	return nil
}
