package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"restboard/internal/session"
)

type sessionRequest struct {
	Token string `json:"token"`
}

// StartSessionHandler stores the backend bearer credential for subsequent
// queries. Issuing and validating the credential is the backend's job; the
// dashboard only keeps it.
func StartSessionHandler(sess *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Token == "" {
			respondWithError(w, http.StatusBadRequest, "token required")
			return
		}

		sess.SetToken(req.Token)

		resp := map[string]any{"active": sess.Active()}
		if exp := sess.ExpiresAt(); !exp.IsZero() {
			resp["expires_at"] = exp.Format(time.RFC3339)
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

// EndSessionHandler drops the stored credential.
func EndSessionHandler(sess *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess.Clear()
		w.WriteHeader(http.StatusNoContent)
	}
}
