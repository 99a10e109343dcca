// Package catalog derives the selection constraints and aggregation
// denominators from the uploaded course catalog. An Index is an immutable
// snapshot: it is rebuilt from scratch whenever the catalog is replaced.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/linangms/DigiApp/internal/domain/models"
)

// ErrInvalidCatalog is returned by Build when the uploaded dataset is missing
// the mandatory DEPT/SUBJ_CODE columns.
var ErrInvalidCatalog = errors.New("invalid catalog: entries must carry DEPT and SUBJ_CODE")

// Options controls Build validation behavior.
type Options struct {
	// ValidateAllRows checks every entry for the mandatory fields. When
	// false, only the first entry is sampled, which matches the historical
	// upload behavior: a catalog whose first row is well-formed passes even
	// if later rows are not.
	ValidateAllRows bool
}

// Index holds the catalog lookup structures keyed by unit and subject.
type Index struct {
	units    []string            // sorted, unique
	subjects map[string][]string // unit -> sorted unique subjects
	sites    map[[2]string][]string
	total    int // unique subjects across the whole catalog
}

// Build normalizes entries into an Index. A non-empty input with missing
// mandatory fields fails with an error wrapping ErrInvalidCatalog.
func Build(entries []models.CatalogEntry, opts Options) (*Index, error) {
	if len(entries) > 0 {
		if opts.ValidateAllRows {
			for i, e := range entries {
				if e.Unit == "" || e.Subject == "" {
					return nil, fmt.Errorf("%w (row %d)", ErrInvalidCatalog, i+1)
				}
			}
		} else if entries[0].Unit == "" || entries[0].Subject == "" {
			return nil, fmt.Errorf("%w (first row)", ErrInvalidCatalog)
		}
	}

	idx := &Index{
		subjects: make(map[string][]string),
		sites:    make(map[[2]string][]string),
	}

	unitSet := make(map[string]bool)
	subjectSet := make(map[string]bool)             // catalog-wide unique subjects
	unitSubjects := make(map[string]map[string]bool) // unit -> subject set

	for _, e := range entries {
		if e.Unit == "" || e.Subject == "" {
			// Rows past the sampled one may still be malformed in
			// first-row mode; they contribute nothing to the lookups.
			continue
		}
		unitSet[e.Unit] = true
		subjectSet[e.Subject] = true
		if unitSubjects[e.Unit] == nil {
			unitSubjects[e.Unit] = make(map[string]bool)
		}
		unitSubjects[e.Unit][e.Subject] = true
		if e.SiteID != "" {
			key := [2]string{e.Unit, e.Subject}
			idx.sites[key] = append(idx.sites[key], e.SiteID)
		}
	}

	idx.units = sortedKeys(unitSet)
	for unit, subs := range unitSubjects {
		idx.subjects[unit] = sortedKeys(subs)
	}
	for key := range idx.sites {
		sort.Strings(idx.sites[key])
	}
	idx.total = len(subjectSet)

	return idx, nil
}

// Units returns every distinct unit, sorted ascending.
func (idx *Index) Units() []string {
	return append([]string(nil), idx.units...)
}

// Subjects returns the distinct subjects of unit, sorted ascending. An unset
// or unmatched unit yields nil.
func (idx *Index) Subjects(unit string) []string {
	return append([]string(nil), idx.subjects[unit]...)
}

// SiteIDs returns the course site IDs recorded for (unit, subject), sorted.
// Duplicates from repeated catalog rows are preserved. Unknown pairs yield
// nil.
func (idx *Index) SiteIDs(unit, subject string) []string {
	return append([]string(nil), idx.sites[[2]string{unit, subject}]...)
}

// TotalSubjectCount is the number of unique subjects across the catalog. It
// is the denominator of the coverage statistic.
func (idx *Index) TotalSubjectCount() int {
	return idx.total
}

// Empty reports whether the index was built from an empty catalog.
func (idx *Index) Empty() bool {
	return len(idx.units) == 0
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
