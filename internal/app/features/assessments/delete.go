package assessments

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
)

// HandleDelete handles DELETE /api/assessments/{id}. Deletion is permanent.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, assessmentstore.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		h.Log.Error("deleting assessment failed", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
