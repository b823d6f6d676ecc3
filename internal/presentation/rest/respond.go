package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dentara/dentara/internal/domain/model"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to HTTP statuses. Internal errors are
// logged with their cause but never leaked to the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, model.ErrConcurrentModification):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		model.ErrInvalidInput,
		model.ErrInvalidAmount,
		model.ErrInvalidCount,
		model.ErrInvalidDueDay,
		model.ErrInvalidTimeRange,
		model.ErrInvalidPriority,
		model.ErrEntrySumMismatch,
		model.ErrNothingToRenegotiate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}
