// Package assessments is the JSON API over the assessment record store.
// Every mutation goes through the store facade; the visible slice and the
// dashboard aggregates are re-derived by their own endpoints afterwards, so
// no handler here caches state between requests.
package assessments

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
)

// Handler is the feature-level entry point for the assessments API.
type Handler struct {
	Store    assessmentstore.Store
	Log      *zap.Logger
	validate *validator.Validate
}

// NewHandler constructs an assessments handler bound to a store and logger.
func NewHandler(store assessmentstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Log:      logger,
		validate: validator.New(),
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
