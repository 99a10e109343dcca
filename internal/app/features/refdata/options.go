package refdata

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/catalog"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
)

type optionsResponse struct {
	Schools []string `json:"schools"`
	catalog.Cascade
}

// ServeOptions handles GET /api/refdata/options. The school and course query
// parameters are the current picker selection; the response carries the
// choices each dependent picker should offer and whether it is enabled. A
// selection the catalog no longer contains degrades to disabled pickers
// rather than an error.
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("listing catalog failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	idx, err := catalog.Build(entries, h.buildOptions())
	if err != nil {
		// Stored data can only be invalid if it predates upload validation.
		h.Log.Error("stored catalog is invalid", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	sel := catalog.Selection{
		Unit:    strings.TrimSpace(r.URL.Query().Get("school")),
		Subject: strings.TrimSpace(r.URL.Query().Get("course")),
	}

	respondJSON(w, http.StatusOK, optionsResponse{
		Schools: idx.Units(),
		Cascade: catalog.Resolve(idx, sel),
	})
}
