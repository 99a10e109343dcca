package refdata

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/system/csvutil"
)

// HandleUpload handles POST /api/refdata/upload. The request is a multipart
// form with the catalog CSV in the "file" field. The file is parsed and
// validated in full before any write, so a rejected upload leaves the stored
// catalog untouched.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)
	if err := r.ParseMultipartForm(csvutil.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	entries, err := csvutil.PreScanCatalogCSV(file)
	if err != nil {
		if errors.Is(err, csvutil.ErrMissingColumns) {
			respondError(w, http.StatusBadRequest, "Invalid refdata format. Must have DEPT and SUBJ_CODE columns.")
			return
		}
		h.Log.Warn("parsing catalog upload failed", zap.Error(err))
		respondError(w, http.StatusBadRequest, "could not parse uploaded file")
		return
	}

	h.replaceCatalog(w, r, entries)
}
