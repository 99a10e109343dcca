package assessments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	"github.com/linangms/DigiApp/internal/domain/models"
	"github.com/linangms/DigiApp/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *assessmentstore.Memory) {
	t.Helper()
	mem := assessmentstore.NewMemory()
	return NewHandler(mem, zap.NewNop()), mem
}

func seed(t *testing.T, mem *assessmentstore.Memory, recs ...models.Assessment) {
	t.Helper()
	for _, rec := range recs {
		if _, err := mem.Create(context.Background(), rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateAndList(t *testing.T) {
	h, _ := newTestHandler(t)
	r := Routes(h)

	body := `{"school":"SCSE","course":"CS101","instructorName":"Tan Wei","platform":"Examena"}`
	rr := doJSON(t, r, http.MethodPost, "/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rr.Code, rr.Body.String())
	}
	var created models.Assessment
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Error("expected server-assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned createdAt")
	}

	rr = doJSON(t, r, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	var listed []models.Assessment
	if err := json.Unmarshal(rr.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("list = %+v, want the created record", listed)
	}
}

func TestCreateClientAssignedID(t *testing.T) {
	h, _ := newTestHandler(t)
	r := Routes(h)

	body := `{"id":"0d9f1e1a-6b3a-4e0e-9f6a-2f4c8b1d3e5f","school":"SCSE","course":"CS101"}`
	rr := doJSON(t, r, http.MethodPost, "/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var created models.Assessment
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != "0d9f1e1a-6b3a-4e0e-9f6a-2f4c8b1d3e5f" {
		t.Errorf("id = %q, want the client-assigned id", created.ID)
	}

	// Same id again conflicts.
	rr = doJSON(t, r, http.MethodPost, "/", body)
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want 409", rr.Code)
	}
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	h, _ := newTestHandler(t)
	r := Routes(h)

	for _, body := range []string{
		`{"course":"CS101"}`,
		`{"school":"SCSE"}`,
		`{}`,
	} {
		rr := doJSON(t, r, http.MethodPost, "/", body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rr.Code)
		}
	}
}

func TestCreateRejectsBadStatusAndEmail(t *testing.T) {
	h, _ := newTestHandler(t)
	r := Routes(h)

	rr := doJSON(t, r, http.MethodPost, "/",
		`{"school":"SCSE","course":"CS101","status":"DONE"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad status: code = %d, want 400", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/",
		`{"school":"SCSE","course":"CS101","instructorEmail":"not-an-email"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad email: code = %d, want 400", rr.Code)
	}
}

func TestCreateSanitizesFreeText(t *testing.T) {
	h, _ := newTestHandler(t)
	r := Routes(h)

	body := `{"school":"SCSE","course":"CS101","remarks":"<script>alert(1)</script>needs LDB","venue":"<b>LT1</b>"}`
	rr := doJSON(t, r, http.MethodPost, "/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
	var created models.Assessment
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Remarks != "needs LDB" {
		t.Errorf("remarks = %q, want script stripped", created.Remarks)
	}
	if created.Venue != "LT1" {
		t.Errorf("venue = %q, want markup stripped", created.Venue)
	}
}

func TestListFilters(t *testing.T) {
	h, mem := newTestHandler(t)
	r := Routes(h)
	seed(t, mem,
		models.Assessment{Unit: "SCSE", Subject: "CS101", InstructorName: "Tan Wei", Platform: models.PlatformExamena},
		models.Assessment{Unit: "NBS", Subject: "AC202", InstructorName: "Lim Hui", Platform: models.PlatformGradescope},
	)

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"no filters", "/", 2},
		{"free text on instructor", "/?q=tan", 1},
		{"column text on unit", "/?filter=nbs", 1},
		{"platform exact", "/?platform=Examena", 1},
		{"platform substring does not match", "/?platform=Exam", 0},
		{"combined AND", "/?q=tan&platform=" + "Gradescope", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, r, http.MethodGet, tc.target, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			var got []models.Assessment
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if len(got) != tc.want {
				t.Errorf("len = %d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestUpdateMergesPartialPatch(t *testing.T) {
	h, mem := newTestHandler(t)
	r := Routes(h)
	seed(t, mem, models.Assessment{Unit: "SCSE", Subject: "CS101", Remarks: "initial"})

	recs, _ := mem.List(context.Background())
	id := recs[0].ID

	rr := doJSON(t, r, http.MethodPut, "/"+id, `{"mockTest":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var updated models.Assessment
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	if !updated.MockTest {
		t.Error("mockTest flag not set")
	}
	if updated.Remarks != "initial" {
		t.Errorf("remarks = %q, want untouched", updated.Remarks)
	}
}

func TestUpdateUnknownIDReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/no-such-id", strings.NewReader(`{"approved":true}`))
	req = testutil.WithChiURLParam(req, "id", "no-such-id")
	rr := httptest.NewRecorder()
	h.HandleUpdate(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestDelete(t *testing.T) {
	h, mem := newTestHandler(t)
	r := Routes(h)
	seed(t, mem, models.Assessment{Unit: "SCSE", Subject: "CS101"})

	recs, _ := mem.List(context.Background())
	id := recs[0].ID

	rr := doJSON(t, r, http.MethodDelete, "/"+id, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["deleted"] != id {
		t.Errorf("deleted = %q, want %q", resp["deleted"], id)
	}

	rr = doJSON(t, r, http.MethodDelete, "/"+id, "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rr.Code)
	}
}

func TestExportCSV(t *testing.T) {
	h, mem := newTestHandler(t)
	r := Routes(h)
	seed(t, mem, models.Assessment{
		Unit: "SCSE", Subject: "CS101", InstructorName: "Tan Wei",
		MockTest: true, Platform: models.PlatformExamena,
		QuestionTypes: []string{"MCQ", "Essay"}, Status: models.StatusCompleted,
	})

	rr := doJSON(t, r, http.MethodGet, "/export.csv", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "DigiApp_Assessments_") {
		t.Errorf("content disposition = %q", cd)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "School,Course,Semester,Instructor,Email,Students") {
		t.Errorf("missing header row in %q", body)
	}
	if !strings.Contains(body, "MCQ, Essay") {
		t.Errorf("question types not joined with comma-space: %q", body)
	}
	if !strings.Contains(body, "Yes") || !strings.Contains(body, "No") {
		t.Errorf("flags not rendered Yes/No: %q", body)
	}
}
