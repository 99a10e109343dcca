// Package stats serves the dashboard summary: onboarding coverage against
// the uploaded catalog, per-school workflow counts, and the platform
// distribution. Everything is re-derived from the stores on each request.
package stats

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/catalog"
	"github.com/linangms/DigiApp/internal/app/query"
	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// CatalogLister is the slice of refdatastore.Store this feature needs.
type CatalogLister interface {
	List(ctx context.Context) ([]models.CatalogEntry, error)
}

// Handler serves the stats endpoint.
type Handler struct {
	Assessments assessmentstore.Store
	Catalog     CatalogLister
	Log         *zap.Logger
	catalogOpts catalog.Options
}

// NewHandler constructs a stats handler over the two stores.
func NewHandler(assessments assessmentstore.Store, cat CatalogLister, logger *zap.Logger, opts catalog.Options) *Handler {
	return &Handler{Assessments: assessments, Catalog: cat, Log: logger, catalogOpts: opts}
}

// Routes mounts the stats API (typically at "/api/stats" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSummary)
	return r
}

// ServeSummary handles GET /api/stats.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	records, err := h.Assessments.List(ctx)
	if err != nil {
		h.Log.Error("listing assessments failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	entries, err := h.Catalog.List(ctx)
	if err != nil {
		h.Log.Error("listing catalog failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	idx, err := catalog.Build(entries, h.catalogOpts)
	if err != nil {
		h.Log.Error("stored catalog is invalid", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, query.Summarize(records, idx))
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
