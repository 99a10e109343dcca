package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	"github.com/linangms/DigiApp/internal/app/system/htmlsanitize"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
	"github.com/linangms/DigiApp/internal/domain/models"
)

type createRequest struct {
	ID              string   `json:"id" validate:"omitempty,uuid4"`
	Unit            string   `json:"school" validate:"required"`
	Subject         string   `json:"course" validate:"required"`
	CourseSiteID    string   `json:"courseId"`
	Semester        string   `json:"semester"`
	InstructorName  string   `json:"instructorName"`
	InstructorEmail string   `json:"instructorEmail" validate:"omitempty,email"`
	StudentCount    string   `json:"studentCount"`
	AssessmentType  string   `json:"assessmentType"`
	AssessmentDate  string   `json:"assessmentDate"`
	Venue           string   `json:"venue"`
	OpenBook        string   `json:"openBook"`
	FirstContact    bool     `json:"firstContact"`
	DemoTraining    bool     `json:"demoTraining"`
	MockSetup       bool     `json:"mockSetup"`
	MockTest        bool     `json:"mockTest"`
	Approved        bool     `json:"approved"`
	VenueBooked     bool     `json:"venueBooked"`
	Confirmed       bool     `json:"confirmed"`
	Platform        string   `json:"platform"`
	QuestionTypes   []string `json:"questionTypes"`
	Status          string   `json:"status" validate:"omitempty,oneof=COMPLETED CANCELED"`
	Remarks         string   `json:"remarks"`
}

// HandleCreate handles POST /api/assessments.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid assessment: school and course are required; id, email, and status must be well-formed")
		return
	}

	rec := models.Assessment{
		ID:              req.ID,
		Unit:            htmlsanitize.Text(req.Unit),
		Subject:         htmlsanitize.Text(req.Subject),
		CourseSiteID:    htmlsanitize.Text(req.CourseSiteID),
		Semester:        htmlsanitize.Text(req.Semester),
		InstructorName:  htmlsanitize.Text(req.InstructorName),
		InstructorEmail: htmlsanitize.Text(req.InstructorEmail),
		StudentCount:    htmlsanitize.Text(req.StudentCount),
		AssessmentType:  htmlsanitize.Text(req.AssessmentType),
		AssessmentDate:  htmlsanitize.Text(req.AssessmentDate),
		Venue:           htmlsanitize.Text(req.Venue),
		OpenBook:        htmlsanitize.Text(req.OpenBook),
		FirstContact:    req.FirstContact,
		DemoTraining:    req.DemoTraining,
		MockSetup:       req.MockSetup,
		MockTest:        req.MockTest,
		Approved:        req.Approved,
		VenueBooked:     req.VenueBooked,
		Confirmed:       req.Confirmed,
		Platform:        htmlsanitize.Text(req.Platform),
		QuestionTypes:   htmlsanitize.Fields(req.QuestionTypes),
		Status:          req.Status,
		Remarks:         htmlsanitize.Text(req.Remarks),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, assessmentstore.ErrDuplicateID) {
			respondError(w, http.StatusConflict, "record already exists")
			return
		}
		h.Log.Error("creating assessment failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}
