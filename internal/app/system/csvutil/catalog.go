// Package csvutil parses uploaded catalog spreadsheets (exported as CSV)
// into catalog entries. Parsing never writes to the database; the caller
// replaces the stored catalog only after a successful pre-scan.
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/linangms/DigiApp/internal/domain/models"
)

// Named columns of the catalog spreadsheet. DEPT and SUBJ_CODE are
// mandatory; COURSE_SITE_ID is optional; everything else is passed through.
const (
	ColUnit    = "DEPT"
	ColSubject = "SUBJ_CODE"
	ColSiteID  = "COURSE_SITE_ID"
)

// ErrMissingColumns is returned when the header row lacks the mandatory
// DEPT/SUBJ_CODE columns.
var ErrMissingColumns = errors.New("catalog upload must have DEPT and SUBJ_CODE columns")

// PreScanCatalogCSV reads all rows from r and converts them to catalog
// entries. The first row must be a header naming the columns; header names
// are matched case-insensitively after trimming. Fully blank rows are
// skipped. Cell-level validation (missing unit or subject values) is left to
// the catalog index build, which mirrors the upload contract.
func PreScanCatalogCSV(r io.Reader) ([]models.CatalogEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	unitCol, subjectCol, siteCol := -1, -1, -1
	extraCols := make(map[int]string)
	for i, name := range header {
		switch n := strings.ToUpper(strings.TrimSpace(name)); n {
		case ColUnit:
			unitCol = i
		case ColSubject:
			subjectCol = i
		case ColSiteID:
			siteCol = i
		case "":
			// unnamed column, dropped
		default:
			extraCols[i] = n
		}
	}
	if unitCol < 0 || subjectCol < 0 {
		return nil, ErrMissingColumns
	}

	var entries []models.CatalogEntry
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(entries)+2, err)
		}
		if len(entries) >= MaxRows {
			return nil, fmt.Errorf("catalog upload exceeds %d rows", MaxRows)
		}

		e := models.CatalogEntry{
			Unit:    cell(rec, unitCol),
			Subject: cell(rec, subjectCol),
			SiteID:  cell(rec, siteCol),
		}
		for i, name := range extraCols {
			if v := cell(rec, i); v != "" {
				if e.Extra == nil {
					e.Extra = make(map[string]string)
				}
				e.Extra[name] = v
			}
		}
		if e.Unit == "" && e.Subject == "" && e.SiteID == "" && len(e.Extra) == 0 {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
