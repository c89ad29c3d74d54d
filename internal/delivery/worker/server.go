// Package worker hosts background maintenance loops that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"dashmonkey/internal/delivery"
	"dashmonkey/internal/usecase"
	"dashmonkey/internal/util"

	"go.uber.org/fx"
)

// cleanupInterval is how often expired session rows are compacted.
const cleanupInterval = time.Hour

// sessionCleanupWorker periodically removes long-expired session rows.
// Revocation itself never deletes rows; this loop is the only physical
// deletion path.
type sessionCleanupWorker struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
	stop     chan struct{}
}

// Params holds dependencies for the cleanup worker
type Params struct {
	fx.In
	fx.Lifecycle

	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// NewSessionCleanupWorker creates the background session compaction loop.
func NewSessionCleanupWorker(params Params) (delivery.Delivery, error) {
	worker := &sessionCleanupWorker{
		sessions: params.Sessions,
		logger:   params.Logger,
		stop:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(worker.stop)

			return nil
		},
	})

	return worker, nil
}

// Serve runs the compaction loop until shutdown.
func (w *sessionCleanupWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting session cleanup worker", slog.Duration("interval", cleanupInterval))

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			w.logger.Info("Stopping session cleanup worker")

			return nil
		case <-ticker.C:
			started := time.Now()
			removed, err := w.sessions.CleanupExpiredSessions(ctx)
			if err != nil {
				w.logger.Error("Session cleanup run failed", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				w.logger.Info("Session cleanup run finished",
					slog.Int64("removed", removed),
					slog.String("elapsed", util.FormatDuration(time.Since(started))))
			}
		}
	}
}
