package worker

import (
	"context"
	"log/slog"
	"time"

	"restboard/internal/service"
)

// Refresher periodically re-fetches the full restaurant list so the baseline
// behind the "show all" reset stays current. It never writes into the live
// working set, so an active filtered view is not clobbered.
type Refresher struct {
	backend  service.Backend
	baseline *service.Baseline
	interval time.Duration
}

func NewRefresher(backend service.Backend, baseline *service.Baseline, interval time.Duration) *Refresher {
	return &Refresher{
		backend:  backend,
		baseline: baseline,
		interval: interval,
	}
}

func (w *Refresher) Start(ctx context.Context) {
	if w.interval <= 0 {
		slog.Info("baseline refresher disabled")
		return
	}

	slog.Info("starting baseline refresher", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("baseline refresher stopped")
			return
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				slog.Error("baseline refresh failed", "error", err)
			}
		}
	}
}

func (w *Refresher) refresh(ctx context.Context) error {
	restaurants, err := w.backend.ListRestaurants(ctx, nil)
	if err != nil {
		return err
	}
	w.baseline.Set(restaurants)
	slog.Info("baseline refreshed", "restaurants", len(restaurants))
	return nil
}
