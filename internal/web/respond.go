package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/andrisoa/malsci/internal/api"
	"github.com/andrisoa/malsci/internal/db"
)

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError funnels every handler error into one status mapping, so the
// handlers never branch on error types themselves.
func respondError(w http.ResponseWriter, err error) {
	var apiErr *api.Error

	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		respond(w, http.StatusUnauthorized, errorBody{"unauthenticated"})
	case errors.Is(err, db.ErrNotFound):
		respond(w, http.StatusNotFound, errorBody{"not found"})
	case errors.As(err, &apiErr):
		// The platform already picked a status; pass it through.
		respond(w, apiErr.Status, errorBody{apiErr.Body})
	default:
		log.Error().Err(err).Msg("handler error")
		respond(w, http.StatusInternalServerError, errorBody{"internal error"})
	}
}

func badRequest(w http.ResponseWriter, err error) {
	respond(w, http.StatusBadRequest, errorBody{err.Error()})
}
