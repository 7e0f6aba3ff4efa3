// Package handlers implements the HTTP surface of the trigger console API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "trigger-console/internal/common/errors"
	"trigger-console/internal/common/logging"
	"trigger-console/internal/config"
	"trigger-console/internal/storage"
)

type Handlers struct {
	storage storage.Storage
	config  *config.Config
}

func New(storage storage.Storage, cfg *config.Config) *Handlers {
	return &Handlers{
		storage: storage,
		config:  cfg,
	}
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to encode response", err)
	}
}

// respondError maps typed application errors to their HTTP status and hides
// internal causes from the client.
func respondError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if apperrors.IsType(err, apperrors.TypeInternal) || apperrors.IsType(err, apperrors.TypeConnection) {
		logging.Error("request failed", err)
	}
	if errors.As(err, &appErr) {
		respondJSON(w, appErr.HTTPStatus(), map[string]string{"message": appErr.Message})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}
