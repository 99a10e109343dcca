package assessments

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/query"
	"github.com/linangms/DigiApp/internal/app/system/timeouts"
	"github.com/linangms/DigiApp/internal/domain/models"
)

var exportHeader = []string{
	"School", "Course", "Semester", "Instructor", "Email", "Students",
	"Assessment Type", "Assessment Date", "First Contact", "Demo/Training",
	"Mock Setup", "Mock Test", "Approved", "Venue Booked", "Confirmed",
	"Platform", "Question Types", "Status", "Remarks",
}

// ServeExportCSV handles GET /api/assessments/export.csv and streams the
// current record set as a spreadsheet-friendly CSV. The same q/filter/platform
// parameters as the list endpoint apply, so the download matches whatever
// view the user is looking at.
func (h *Handler) ServeExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	records, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("exporting assessments failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	f := query.Filters{
		FreeText:      strings.TrimSpace(r.URL.Query().Get("q")),
		ColumnText:    strings.TrimSpace(r.URL.Query().Get("filter")),
		PlatformExact: strings.TrimSpace(r.URL.Query().Get("platform")),
	}
	records = query.Apply(records, f)

	filename := "DigiApp_Assessments_" + time.Now().UTC().Format("2006-01-02") + ".csv"

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	_ = cw.Write(exportHeader)
	for _, a := range records {
		_ = cw.Write(exportRow(a))
	}
}

func exportRow(a models.Assessment) []string {
	return []string{
		a.Unit,
		a.Subject,
		a.Semester,
		a.InstructorName,
		a.InstructorEmail,
		a.StudentCount,
		a.AssessmentType,
		a.AssessmentDate,
		yesNo(a.FirstContact),
		yesNo(a.DemoTraining),
		yesNo(a.MockSetup),
		yesNo(a.MockTest),
		yesNo(a.Approved),
		yesNo(a.VenueBooked),
		yesNo(a.Confirmed),
		a.Platform,
		strings.Join(a.QuestionTypes, ", "),
		a.Status,
		a.Remarks,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
