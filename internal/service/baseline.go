package service

import (
	"sync"

	"restboard/internal/model"
)

// Baseline holds the unfiltered full dataset behind the dashboard's
// "show all" reset. It is seeded by the initial load and kept current by the
// refresh worker, independently of whatever filtered view is live.
type Baseline struct {
	mu          sync.RWMutex
	restaurants []model.Restaurant
}

func NewBaseline() *Baseline {
	return &Baseline{}
}

func (b *Baseline) Set(restaurants []model.Restaurant) {
	out := make([]model.Restaurant, len(restaurants))
	copy(out, restaurants)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.restaurants = out
}

func (b *Baseline) Get() []model.Restaurant {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Restaurant, len(b.restaurants))
	copy(out, b.restaurants)
	return out
}
