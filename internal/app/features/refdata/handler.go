// Package refdata is the JSON API over the uploaded course catalog. The
// catalog drives the cascading school/course/course-site pickers and the
// dashboard coverage figure; uploads wholesale-replace the previous snapshot.
package refdata

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/catalog"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// CatalogStore is the slice of refdatastore.Store this feature needs.
type CatalogStore interface {
	List(ctx context.Context) ([]models.CatalogEntry, error)
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, entries []models.CatalogEntry) error
}

// Handler serves the catalog endpoints.
type Handler struct {
	Store CatalogStore
	Log   *zap.Logger
	// validateAllRows upgrades the upload check from the historical
	// first-row heuristic to full-file validation.
	validateAllRows bool
}

// NewHandler constructs a refdata handler bound to a store and logger.
func NewHandler(store CatalogStore, logger *zap.Logger, validateAllRows bool) *Handler {
	return &Handler{Store: store, Log: logger, validateAllRows: validateAllRows}
}

func (h *Handler) buildOptions() catalog.Options {
	return catalog.Options{ValidateAllRows: h.validateAllRows}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
