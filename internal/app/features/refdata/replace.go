package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/catalog"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// HandleReplace handles POST /api/refdata. The body is a JSON array of
// catalog rows; it replaces the stored catalog wholesale after passing the
// same shape validation as a file upload. An empty array clears the catalog.
func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var entries []models.CatalogEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h.replaceCatalog(w, r, entries)
}

// replaceCatalog validates entries against the index builder and swaps them
// into the store. Shared by the JSON and file-upload paths.
func (h *Handler) replaceCatalog(w http.ResponseWriter, r *http.Request, entries []models.CatalogEntry) {
	if _, err := catalog.Build(entries, h.buildOptions()); err != nil {
		if errors.Is(err, catalog.ErrInvalidCatalog) {
			respondError(w, http.StatusBadRequest, "Invalid refdata format. Must have DEPT and SUBJ_CODE columns.")
			return
		}
		h.Log.Error("validating catalog failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	if err := h.Store.ReplaceAll(ctx, entries); err != nil {
		h.Log.Error("replacing catalog failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Reference data updated",
		"count":   len(entries),
	})
}
