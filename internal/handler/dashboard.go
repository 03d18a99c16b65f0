package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restboard/internal/model"
	"restboard/internal/service"
)

// SnapshotHandler returns the current renderable dashboard state.
func SnapshotHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

// ReloadHandler re-issues the full restaurant list query. Text search,
// location and page are passed through to the backend when present.
func ReloadHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string)
		for _, key := range []string{"q", "location", "page"} {
			if v := r.URL.Query().Get(key); v != "" {
				params[key] = v
			}
		}

		if err := ws.LoadAll(r.Context(), params); err != nil {
			slog.Error("load restaurants failed", "error", err)
			respondWithJSON(w, statusForError(err), ws.Snapshot())
			return
		}
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

type topRevenueRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TopRevenueHandler swaps the working set for the top three restaurants by
// revenue over the requested date range.
func TopRevenueHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req topRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := ws.LoadTopRevenue(r.Context(), req.StartDate, req.EndDate); err != nil {
			slog.Error("top revenue query failed", "error", err)
			respondWithJSON(w, statusForError(err), ws.Snapshot())
			return
		}
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

// FiltersHandler applies user filter criteria to the working set.
func FiltersHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var criteria model.FilterCriteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := ws.ApplyFilters(r.Context(), criteria); err != nil {
			slog.Error("filter query failed", "error", err)
			respondWithJSON(w, statusForError(err), ws.Snapshot())
			return
		}
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

// ResetHandler restores the unfiltered baseline dataset ("show all").
func ResetHandler(ws *service.WorkingSet, baseline *service.Baseline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws.ResetToFull(baseline.Get())
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

type sortRequest struct {
	Key model.SortKey `json:"key"`
}

// SortHandler applies a column-header click to the sort state.
func SortHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sortRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid json")
			return
		}

		switch req.Key {
		case model.SortByName, model.SortByLocation, model.SortByRevenue:
		default:
			respondWithError(w, http.StatusBadRequest, "unknown sort key")
			return
		}

		ws.SetSort(req.Key)
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

// LoadMoreOrdersHandler fetches the next order page for one restaurant.
func LoadMoreOrdersHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "restaurant id required")
			return
		}

		if err := ws.LoadMoreOrders(r.Context(), id); err != nil {
			slog.Error("load more orders failed", "restaurant", id, "error", err)
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, ws.Snapshot())
	}
}

// ToggleExpandHandler flips a restaurant's order sub-table visibility.
func ToggleExpandHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			respondWithError(w, http.StatusBadRequest, "restaurant id required")
			return
		}

		expanded := ws.ToggleExpanded(id)
		respondWithJSON(w, http.StatusOK, map[string]bool{"expanded": expanded})
	}
}
