package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	"github.com/linangms/DigiApp/internal/app/system/htmlsanitize"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
)

// HandleUpdate handles PUT /api/assessments/{id}. The body is a partial
// document: only the fields present are merged into the stored record, so a
// checkbox toggle sends one flag and a form edit sends the full set.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p assessmentstore.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if p.Status != nil && *p.Status != "" &&
		*p.Status != "COMPLETED" && *p.Status != "CANCELED" {
		respondError(w, http.StatusBadRequest, "status must be COMPLETED or CANCELED")
		return
	}
	sanitizePatch(&p)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, assessmentstore.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		h.Log.Error("updating assessment failed", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// sanitizePatch strips markup from every free-text field present in p.
func sanitizePatch(p *assessmentstore.Patch) {
	clean := func(s **string) {
		if *s != nil {
			v := htmlsanitize.Text(**s)
			*s = &v
		}
	}
	clean(&p.Unit)
	clean(&p.Subject)
	clean(&p.CourseSiteID)
	clean(&p.Semester)
	clean(&p.InstructorName)
	clean(&p.InstructorEmail)
	clean(&p.StudentCount)
	clean(&p.AssessmentType)
	clean(&p.AssessmentDate)
	clean(&p.Venue)
	clean(&p.OpenBook)
	clean(&p.Platform)
	clean(&p.Remarks)
	if p.QuestionTypes != nil {
		cleaned := htmlsanitize.Fields(*p.QuestionTypes)
		p.QuestionTypes = &cleaned
	}
}
