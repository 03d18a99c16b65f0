package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"restboard/internal/service"
)

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// statusForError maps an operation failure onto an HTTP status. An empty
// result is a renderable state rather than a failure, so it stays 200; the
// snapshot carries the error classification.
func statusForError(err error) int {
	switch service.Classify(err) {
	case service.ErrorValidation:
		return http.StatusBadRequest
	case service.ErrorEmpty:
		return http.StatusOK
	default:
		switch {
		case errors.Is(err, service.ErrOrdersFetchInFlight):
			return http.StatusConflict
		case errors.Is(err, service.ErrUnknownRestaurant):
			return http.StatusNotFound
		case errors.Is(err, service.ErrNoOrderPage):
			return http.StatusBadRequest
		default:
			return http.StatusBadGateway
		}
	}
}
