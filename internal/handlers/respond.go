package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/storeline/backoffice/internal/apperr"
	"github.com/storeline/backoffice/internal/httpx"
)

// decodeJSON reads the request body into dst; on malformed JSON it writes the
// error response itself and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}

// urlID parses the {id} route parameter.
func urlID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httpx.Error(w, http.StatusBadRequest, "Invalid ID.")
		return 0, false
	}
	return uint(id), true
}

// respondError maps the error taxonomy onto HTTP statuses. Internal errors
// are logged with full context and reported generically.
func respondError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Error().Err(err).Msg("unexpected error")
		httpx.Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	switch ae.Kind {
	case apperr.KindValidation:
		httpx.ValidationError(w, ae.Fields)
	case apperr.KindNotFound:
		httpx.Error(w, http.StatusNotFound, ae.Message)
	case apperr.KindBusinessRule:
		httpx.Error(w, http.StatusBadRequest, ae.Message)
	default:
		log.Error().Err(ae).Msg("internal error")
		httpx.Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
