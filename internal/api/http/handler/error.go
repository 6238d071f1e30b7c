package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storefront/server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusFor maps every taxonomy kind to exactly one HTTP status. The
// mapping is total and entity-agnostic.
func statusFor(kind model.Kind) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates a service error into a response. Unexpected
// failures never expose their cause to the caller.
func writeError(w http.ResponseWriter, err error) {
	kind := model.KindOf(err)
	if kind == model.KindUnexpected {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	var e *model.Error
	errors.As(err, &e)
	writeJSON(w, statusFor(kind), errorResponse{Error: e.Message, Field: e.Field})
}
