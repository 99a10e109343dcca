package assessments

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/query"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// ServeList handles GET /api/assessments.
//
// The full record set is returned sorted by createdAt descending. The
// optional query parameters run the display filters server-side:
//
//	q        free-text search over school, course, and instructor name
//	filter   school/course column filter
//	platform exact platform label match
//
// Filtering preserves record order and never affects the stored data.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	records, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("listing assessments failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	f := query.Filters{
		FreeText:      strings.TrimSpace(r.URL.Query().Get("q")),
		ColumnText:    strings.TrimSpace(r.URL.Query().Get("filter")),
		PlatformExact: strings.TrimSpace(r.URL.Query().Get("platform")),
	}
	records = query.Apply(records, f)

	if records == nil {
		records = []models.Assessment{}
	}
	respondJSON(w, http.StatusOK, records)
}
