package worker

import (
	"context"
	"time"

	"afterReach/internal/logger"
	"afterReach/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const defaultInterval = 5 * time.Minute

type OverdueSource interface {
	Overdue(ctx context.Context) []models.PersonalTask
}

// OverdueWorker periodically counts open personal tasks whose date has passed
// and publishes the number as a gauge.
type OverdueWorker struct {
	tasks    OverdueSource
	interval time.Duration
	gauge    prometheus.Gauge
}

func NewOverdueWorker(tasks OverdueSource, interval time.Duration, reg prometheus.Registerer) *OverdueWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "afterreach",
		Subsystem: "tasks",
		Name:      "overdue",
		Help:      "Open personal tasks dated before today.",
	})
	reg.MustRegister(gauge)

	return &OverdueWorker{
		tasks:    tasks,
		interval: interval,
		gauge:    gauge,
	}
}

// Start checks once immediately and then on every tick until ctx is done.
func (w *OverdueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: overdue check stopping")
			return
		}
	}
}

func (w *OverdueWorker) Check(ctx context.Context) int {
	start := time.Now()

	overdue := w.tasks.Overdue(ctx)
	w.gauge.Set(float64(len(overdue)))

	ids := make([]string, 0, len(overdue))
	for _, t := range overdue {
		ids = append(ids, t.ID)
	}
	logger.Info("Worker: overdue check finished",
		zap.Duration("took", time.Since(start)),
		zap.Int("overdue", len(overdue)),
		zap.Strings("task_ids", ids))
	return len(overdue)
}
