// Package app implements the lifecycle of the long-running xbwd server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/xbridge-witness/xbwd/internal/buildinfo"
	"github.com/xbridge-witness/xbwd/internal/cache"
	"github.com/xbridge-witness/xbwd/internal/config"
	"github.com/xbridge-witness/xbwd/internal/logging"
	"github.com/xbridge-witness/xbwd/internal/metrics"
	"github.com/xbridge-witness/xbwd/internal/rpcserver"
	"github.com/xbridge-witness/xbwd/internal/severity"
	"github.com/xbridge-witness/xbwd/internal/tracing"
	"github.com/xbridge-witness/xbwd/internal/witnessdb"
	"golang.org/x/sync/errgroup"
)

// App is the xbwd server. Construct it with New(), then call Setup(), Start()
// and Run() in that order.
type App struct {
	cfg      *config.Config
	sev      severity.Severity
	log      *slog.Logger
	db       *witnessdb.Client
	counts   *cache.Value[*witnessdb.AttestationCounts]
	listener net.Listener
	// cleanup functions, run in reverse order on shutdown
	cleanup []func()

	eg      *errgroup.Group
	stop    context.CancelFunc
	started time.Time
}

// New returns a new App for the given configuration and log severity.
func New(cfg *config.Config, sev severity.Severity) *App {
	return &App{cfg: cfg, sev: sev}
}

// Setup acquires the resources the server needs. It returns false if any of
// them could not be acquired, in which case nothing is left held.
func (a *App) Setup(ctx context.Context) bool {
	log, closer, err := logging.New(a.cfg, a.sev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't set up logging: %v\n", err)
		return false
	}
	a.log = log
	a.onShutdown(func() { _ = closer.Close() })
	log.Info("setting up server",
		slog.String("version", buildinfo.VersionString()),
		slog.String("severity", a.sev.String()))
	if err = a.setup(ctx); err != nil {
		log.Error("couldn't set up server", slog.Any("error", err))
		a.shutdown()
		return false
	}
	return true
}

func (a *App) setup(ctx context.Context) error {
	if a.cfg.TraceFile != "" {
		w, tp, err := tracing.NewTracerProvider(a.cfg.TraceFile,
			buildinfo.ServerName, buildinfo.VersionString())
		if err != nil {
			return fmt.Errorf("couldn't init tracing: %v", err)
		}
		a.onShutdown(func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				a.log.Warn("couldn't shut down tracer provider", slog.Any("error", err))
			}
			_ = w.Close()
		})
	}
	if a.cfg.MetricsEndpoint != "" {
		// metrics needs a separate context because Shutdown() will exit
		// immediately if the context is already done.
		m := metrics.NewServer(a.log, a.cfg.MetricsEndpoint)
		a.onShutdown(func() { _ = m.Shutdown(context.Background()) })
	}
	db, err := witnessdb.NewClient(ctx, a.cfg.DBDir)
	if err != nil {
		return fmt.Errorf("couldn't init witness database: %v", err)
	}
	a.db = db
	a.counts = cache.NewValue(db.AttestationCounts)
	a.onShutdown(func() {
		if err := db.Close(); err != nil {
			a.log.Warn("couldn't close witness database", slog.Any("error", err))
		}
	})
	l, err := net.Listen("tcp", a.cfg.RPCEndpoint.String())
	if err != nil {
		return fmt.Errorf("couldn't listen on %s: %v", a.cfg.RPCEndpoint, err)
	}
	a.listener = l
	return nil
}

// Start starts serving admin requests. The server runs until ctx is cancelled
// or a stop request is received.
func (a *App) Start(ctx context.Context) {
	ctx, a.stop = context.WithCancel(ctx)
	a.eg, ctx = errgroup.WithContext(ctx)
	srv := rpcserver.New(a.log, a, a.stop)
	a.eg.Go(func() error {
		return srv.Serve(ctx, a.listener)
	})
	a.started = time.Now()
	a.log.Info("server started", slog.String("rpcEndpoint", a.Addr()))
}

// Run blocks until the server has stopped, then releases its resources.
func (a *App) Run() error {
	err := a.eg.Wait()
	a.stop()
	if err != nil {
		a.log.Error("server stopped with error", slog.Any("error", err))
	} else {
		a.log.Info("server stopped")
	}
	a.shutdown()
	return err
}

// Addr returns the address the admin endpoint listens on.
func (a *App) Addr() string {
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// ServerInfo implements rpcserver.InfoService.
func (a *App) ServerInfo(ctx context.Context) (map[string]any, error) {
	counts, err := a.counts.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't count attestations: %v", err)
	}
	info := map[string]any{
		"build_version": buildinfo.VersionString(),
		"server_state":  "running",
		"uptime":        int64(time.Since(a.started).Seconds()),
		"log_level":     a.sev.String(),
		"rpc_endpoint":  a.Addr(),
		"attestations":  counts,
	}
	if a.cfg.LockingChain != nil {
		info["locking_chain"] = a.cfg.LockingChain.Endpoint.String()
	}
	if a.cfg.IssuingChain != nil {
		info["issuing_chain"] = a.cfg.IssuingChain.Endpoint.String()
	}
	return info, nil
}

func (a *App) onShutdown(fn func()) {
	a.cleanup = append(a.cleanup, fn)
}

func (a *App) shutdown() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}
