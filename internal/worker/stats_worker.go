package worker

import (
	"context"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/models/task"

	"go.uber.org/zap"
)

type StatsProvider interface {
	GetStats(context.Context) (*task.Stats, error)
}

// StatsWorker periodically logs the board aggregates, giving operators a
// pulse of the in-memory store without hitting the API.
type StatsWorker struct {
	provider StatsProvider
	interval time.Duration
}

func NewStatsWorker(provider StatsProvider, interval time.Duration) *StatsWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &StatsWorker{
		provider: provider,
		interval: interval,
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Report(ctx)
		case <-ctx.Done():
			logger.Info("Worker: stats reporter stopping")
			return
		}
	}
}

func (w *StatsWorker) Report(ctx context.Context) {
	stats, err := w.provider.GetStats(ctx)
	if err != nil {
		logger.Warn("Worker: failed to collect stats", zap.Error(err))
		return
	}

	logger.Info("Worker: board stats",
		zap.Int("total", stats.Total),
		zap.Int("active", stats.Active),
		zap.Int("in_progress", stats.InProgress),
		zap.Int("completed", stats.Completed),
	)
}
