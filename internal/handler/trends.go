package handler

import (
	"log/slog"
	"net/http"
	"sort"

	"restboard/internal/service"
)

// TrendsHandler returns the per-day trend rows for one restaurant over a date
// range. The transform itself makes no ordering promise, so chronological
// order is imposed here where the rows are rendered.
func TrendsHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rows, err := ws.FetchTrends(r.Context(), q.Get("restaurant_id"), q.Get("start_date"), q.Get("end_date"))
		if err != nil {
			slog.Error("trends query failed", "error", err)
			respondWithError(w, statusForError(err), err.Error())
			return
		}

		sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
		respondWithJSON(w, http.StatusOK, rows)
	}
}
