package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"restboard/internal/model"
)

const topRevenueLimit = 3

// WorkingSet owns the restaurant collection currently driving the dashboard
// and every transformation applied to it. The presentation layer only reads
// snapshots and calls operations; it never touches the records directly.
//
// Primary fetches (LoadAll, LoadTopRevenue, ApplyFilters) replace the whole
// collection. Each carries a sequence number and a response that settles
// after a newer fetch was issued is discarded, so a slow reply can never
// clobber a fresher view. Order-page fetches are secondary: scoped to one
// restaurant id and guarded against concurrent calls for the same id.
type WorkingSet struct {
	backend Backend

	mu         sync.Mutex
	collection []model.Restaurant
	sortState  model.SortState
	expanded   map[string]bool
	lastErr    error
	loading    bool
	loaded     bool
	seq        uint64
	inflight   map[string]bool

	// sorted view memoized on (collection generation, sort state)
	gen       uint64
	sorted    []model.Restaurant
	sortedGen uint64
	sortedBy  model.SortState
}

// Snapshot is the renderable state handed to the presentation layer.
type Snapshot struct {
	Restaurants []model.Restaurant `json:"restaurants"`
	Sort        model.SortState    `json:"sort"`
	Expanded    []string           `json:"expanded"`
	Loading     bool               `json:"loading"`
	Error       string             `json:"error,omitempty"`
	ErrorKind   ErrorKind          `json:"errorKind,omitempty"`
}

func NewWorkingSet(backend Backend) *WorkingSet {
	return &WorkingSet{
		backend:  backend,
		expanded: make(map[string]bool),
		inflight: make(map[string]bool),
	}
}

// LoadAll replaces the collection with the full restaurant list. On failure
// the previous collection is kept, except on the very first load where there
// is nothing to keep.
func (ws *WorkingSet) LoadAll(ctx context.Context, params map[string]string) error {
	seq := ws.begin()
	restaurants, err := ws.backend.ListRestaurants(ctx, params)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.settleLocked(seq) {
		return nil
	}
	if err != nil {
		ws.lastErr = err
		if !ws.loaded {
			ws.replaceLocked(nil)
		}
		return err
	}

	ws.lastErr = nil
	ws.loaded = true
	ws.replaceLocked(restaurants)
	return nil
}

// LoadTopRevenue replaces the collection with at most the first three
// restaurants of the ranked result. Both dates are required; the check runs
// before any network call and never enters the loading state.
func (ws *WorkingSet) LoadTopRevenue(ctx context.Context, startDate, endDate string) error {
	if startDate == "" || endDate == "" {
		ws.setError(ErrMissingDates)
		return ErrMissingDates
	}

	seq := ws.begin()
	restaurants, err := ws.backend.TopRevenue(ctx, startDate, endDate)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.settleLocked(seq) {
		return nil
	}
	if err != nil {
		ws.lastErr = err
		if !ws.loaded {
			ws.replaceLocked(nil)
		}
		return err
	}
	if len(restaurants) == 0 {
		ws.lastErr = ErrNoRestaurants
		ws.replaceLocked(nil)
		return ErrNoRestaurants
	}

	if len(restaurants) > topRevenueLimit {
		restaurants = restaurants[:topRevenueLimit]
	}
	ws.lastErr = nil
	ws.loaded = true
	ws.replaceLocked(restaurants)
	return nil
}

// ApplyFilters replaces the collection with the filtered-orders result. An
// empty result is a renderable empty state, kept apart from transport
// failures.
func (ws *WorkingSet) ApplyFilters(ctx context.Context, criteria model.FilterCriteria) error {
	seq := ws.begin()
	restaurants, err := ws.backend.FilteredOrders(ctx, criteria.QueryParams())

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.settleLocked(seq) {
		return nil
	}
	if err != nil {
		ws.lastErr = err
		if !ws.loaded {
			ws.replaceLocked(nil)
		}
		return err
	}
	if len(restaurants) == 0 {
		ws.lastErr = ErrNoRestaurants
		ws.replaceLocked(nil)
		return ErrNoRestaurants
	}

	ws.lastErr = nil
	ws.loaded = true
	ws.replaceLocked(restaurants)
	return nil
}

// LoadMoreOrders fetches the next order page for one restaurant and splices
// the merged page into the collection copy-on-write; other restaurants keep
// their records untouched. Concurrent calls for the same id are rejected so
// pages cannot merge twice or out of order. If the working set was replaced
// while the page was in flight, the response is dropped.
func (ws *WorkingSet) LoadMoreOrders(ctx context.Context, restaurantID string) error {
	ws.mu.Lock()
	idx := ws.indexLocked(restaurantID)
	if idx < 0 {
		ws.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownRestaurant, restaurantID)
	}
	current := ws.collection[idx]
	if current.Orders == nil {
		ws.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNoOrderPage, restaurantID)
	}
	if ws.inflight[restaurantID] {
		ws.mu.Unlock()
		return ErrOrdersFetchInFlight
	}
	ws.inflight[restaurantID] = true
	nextPage := current.Orders.CurrentPage + 1
	ws.mu.Unlock()

	defer func() {
		ws.mu.Lock()
		delete(ws.inflight, restaurantID)
		ws.mu.Unlock()
	}()

	restaurants, err := ws.backend.FilteredOrders(ctx, map[string]string{
		"restaurant_id": restaurantID,
		"page":          strconv.Itoa(nextPage),
	})
	if err != nil {
		return fmt.Errorf("load order page %d: %w", nextPage, err)
	}
	if len(restaurants) == 0 || restaurants[0].Orders == nil {
		return fmt.Errorf("order page %d: response carries no orders", nextPage)
	}
	incoming := *restaurants[0].Orders

	ws.mu.Lock()
	defer ws.mu.Unlock()
	idx = ws.indexLocked(restaurantID)
	if idx < 0 {
		// working set replaced while the page was in flight
		return nil
	}
	current = ws.collection[idx]
	if current.Orders == nil || current.Orders.CurrentPage+1 != incoming.CurrentPage {
		// page no longer lines up with the loaded prefix, drop it
		return nil
	}

	merged := MergePage(*current.Orders, incoming)
	updated := current
	updated.Orders = &merged

	collection := make([]model.Restaurant, len(ws.collection))
	copy(collection, ws.collection)
	collection[idx] = updated
	ws.collection = collection
	ws.gen++
	return nil
}

// FetchTrends loads and transforms the daily trend rows for one restaurant.
// The result is ephemeral: it is returned to the caller, never stored.
func (ws *WorkingSet) FetchTrends(ctx context.Context, restaurantID, startDate, endDate string) ([]model.TrendRow, error) {
	if restaurantID == "" || startDate == "" || endDate == "" {
		return nil, ErrMissingTrendParams
	}

	payload, err := ws.backend.OrderTrends(ctx, restaurantID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetch trends: %w", err)
	}
	return ToTrendRows(payload), nil
}

// ToggleExpanded flips whether a restaurant's order sub-table is shown and
// reports the new state.
func (ws *WorkingSet) ToggleExpanded(id string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.expanded[id] {
		delete(ws.expanded, id)
		return false
	}
	ws.expanded[id] = true
	return true
}

// SetSort applies the column-header click rules: a repeated key toggles
// ascending to descending and back, a new key always starts ascending.
func (ws *WorkingSet) SetSort(key model.SortKey) model.SortState {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.sortState.Key == key && ws.sortState.Direction == model.SortAsc {
		ws.sortState.Direction = model.SortDesc
	} else {
		ws.sortState = model.SortState{Key: key, Direction: model.SortAsc}
	}
	return ws.sortState
}

// ResetToFull restores the caller-supplied full dataset, dropping filters,
// expansion state and any error.
func (ws *WorkingSet) ResetToFull(original []model.Restaurant) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	collection := make([]model.Restaurant, len(original))
	copy(collection, original)
	ws.replaceLocked(collection)
	ws.lastErr = nil
	ws.loaded = true
}

// SortedView returns the collection under the active sort. The underlying
// collection order is never mutated; the view is memoized until either the
// collection or the sort state changes.
func (ws *WorkingSet) SortedView() []model.Restaurant {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.sortedViewLocked()
}

// Collection returns a copy of the canonical, unsorted collection.
func (ws *WorkingSet) Collection() []model.Restaurant {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	out := make([]model.Restaurant, len(ws.collection))
	copy(out, ws.collection)
	return out
}

// Snapshot returns the full renderable state.
func (ws *WorkingSet) Snapshot() Snapshot {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	expanded := make([]string, 0, len(ws.expanded))
	for id := range ws.expanded {
		expanded = append(expanded, id)
	}
	sort.Strings(expanded)

	snap := Snapshot{
		Restaurants: ws.sortedViewLocked(),
		Sort:        ws.sortState,
		Expanded:    expanded,
		Loading:     ws.loading,
	}
	if ws.lastErr != nil {
		snap.Error = ws.lastErr.Error()
		snap.ErrorKind = Classify(ws.lastErr)
	}
	return snap
}

// begin marks the start of a primary fetch and hands out its sequence number.
func (ws *WorkingSet) begin() uint64 {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.seq++
	ws.loading = true
	return ws.seq
}

// settleLocked reports whether the fetch is still the latest issued one. A
// superseded response must not touch any state, including the loading flag,
// which the newer fetch now owns.
func (ws *WorkingSet) settleLocked(seq uint64) bool {
	if seq != ws.seq {
		return false
	}
	ws.loading = false
	return true
}

func (ws *WorkingSet) replaceLocked(restaurants []model.Restaurant) {
	ws.collection = restaurants
	ws.expanded = make(map[string]bool)
	ws.gen++
}

func (ws *WorkingSet) indexLocked(id string) int {
	for i, r := range ws.collection {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (ws *WorkingSet) setError(err error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.lastErr = err
}

func (ws *WorkingSet) sortedViewLocked() []model.Restaurant {
	if ws.sorted != nil && ws.sortedGen == ws.gen && ws.sortedBy == ws.sortState {
		return ws.sorted
	}
	ws.sorted = ApplySort(ws.collection, ws.sortState)
	ws.sortedGen = ws.gen
	ws.sortedBy = ws.sortState
	return ws.sorted
}
