// Package server runs the daemon's long-lived components.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pruner drops expired cache entries.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// Config for the runner.
type Config struct {
	Addr            string
	PruneInterval   time.Duration // default 1h
	ShutdownTimeout time.Duration // default 10s
}

// Runner serves HTTP and, when a pruner is set, prunes the cache on an
// interval until its context is canceled.
type Runner struct {
	handler http.Handler
	pruner  Pruner
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner. pruner may be nil.
func NewRunner(handler http.Handler, pruner Pruner, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PruneInterval <= 0 {
		cfg.PruneInterval = time.Hour
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Runner{
		handler: handler,
		pruner:  pruner,
		config:  cfg,
		logger:  logger,
	}
}

// Run listens on the configured address and blocks until ctx is canceled
// or a component fails.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return err
	}
	return r.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		r.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if r.pruner != nil {
		g.Go(func() error {
			r.pruneLoop(ctx)
			return nil
		})
	}

	err := g.Wait()
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Runner) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(r.config.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.pruner.Prune(ctx)
			if err != nil {
				if ctx.Err() == nil {
					r.logger.Warn("cache prune failed", "error", err)
				}
				continue
			}
			if n > 0 {
				r.logger.Debug("cache pruned", "removed", n)
			}
		}
	}
}
