package refdata

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/system/timeouts"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// ServeList handles GET /api/refdata and returns the full catalog snapshot.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("listing catalog failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if entries == nil {
		entries = []models.CatalogEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
