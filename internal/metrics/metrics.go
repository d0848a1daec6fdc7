// Package metrics implements the prometheus metrics server.
package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xbridge-witness/xbwd/internal/buildinfo"
)

var (
	buildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "xbwd_build_info",
		Help: "Build information of the running xbwd server",
	}, []string{"version", "commit"})
)

// Handler returns the metrics http.Handler.
func Handler() http.Handler {
	commit, _, _ := buildinfo.Details()
	buildInfo.WithLabelValues(buildinfo.VersionString(), commit).Set(1)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// NewServer returns a *http.Server serving prometheus metrics in a new
// goroutine.
// Caller should defer Shutdown() for cleanup.
func NewServer(log *slog.Logger, addr string) *http.Server {
	s := http.Server{
		Addr:         addr,
		Handler:      Handler(),
		ReadTimeout:  16 * time.Second,
		WriteTimeout: 16 * time.Second,
	}
	go func() {
		if err := s.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("metrics server did not shut down cleanly", slog.Any("error", err))
		}
	}()
	return &s
}
