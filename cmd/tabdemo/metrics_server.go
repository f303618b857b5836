package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/tabpanel/pkg/logging"
)

const shutdownTimeout = 2 * time.Second

// newMetricsRouter exposes reg on /metrics and a liveness probe on /healthz.
func newMetricsRouter(reg *prometheus.Registry) http.Handler {
	router := chi.NewRouter()
	router.Get("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}).ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return router
}

// serveMetrics serves h on addr until ctx is done. ready, when non-nil,
// receives the bound address.
func serveMetrics(ctx context.Context, addr string, h http.Handler, logger *logging.Logger, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return withExitCode(fmt.Errorf("metrics listen %s: %w", addr, err), exitRuntime)
	}
	if ready != nil {
		ready(ln.Addr())
	}
	logger.Info("metrics listening", "addr", ln.Addr().String())

	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
