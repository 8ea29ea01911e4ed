package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/kmrl-docs/dochub/internal/model"
)

// Sweeper runs one mailbox sweep and reports the outcome.
type Sweeper interface {
	Sweep(ctx context.Context) *model.SweepReport
}

// Worker triggers mailbox sweeps on a fixed interval.
type Worker struct {
	sweeper  Sweeper
	interval time.Duration
}

// New creates a new Worker.
func New(sweeper Sweeper, interval time.Duration) *Worker {
	return &Worker{sweeper: sweeper, interval: interval}
}

// Start begins the sweep loop. It blocks until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("sweep worker started", "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sweep worker stopped")
			return
		case <-ticker.C:
		}

		report := w.sweeper.Sweep(ctx)
		slog.Info("sweep finished",
			"processed", report.Processed,
			"unsupported", len(report.UnsupportedFiles),
			"messages", len(report.Messages))
	}
}
