// Package query holds the pure read-side logic over assessment snapshots:
// filtering the visible slice and computing the dashboard aggregates. Nothing
// here mutates records or carries state between calls; callers recompute
// after every store mutation.
package query

import (
	"strings"

	"github.com/linangms/DigiApp/internal/domain/models"
)

// Filters are the composable display filters. Empty values pass everything;
// supplied values are AND-combined.
type Filters struct {
	// FreeText is the global search box: case-insensitive substring over
	// unit, subject, and instructor name.
	FreeText string
	// ColumnText is the unit/subject column filter: case-insensitive
	// substring over those two fields only.
	ColumnText string
	// PlatformExact matches the platform label exactly.
	PlatformExact string
}

// Empty reports whether no filter is active.
func (f Filters) Empty() bool {
	return f.FreeText == "" && f.ColumnText == "" && f.PlatformExact == ""
}

// Apply returns the records matching f, preserving their relative order.
func Apply(records []models.Assessment, f Filters) []models.Assessment {
	if f.Empty() {
		return records
	}

	free := strings.ToLower(f.FreeText)
	column := strings.ToLower(f.ColumnText)

	out := make([]models.Assessment, 0, len(records))
	for _, a := range records {
		if !matchesFree(a, free) {
			continue
		}
		if !matchesColumn(a, column) {
			continue
		}
		if f.PlatformExact != "" && a.Platform != f.PlatformExact {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesFree(a models.Assessment, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(a.Unit, term) ||
		containsFold(a.Subject, term) ||
		containsFold(a.InstructorName, term)
}

func matchesColumn(a models.Assessment, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(a.Unit, term) || containsFold(a.Subject, term)
}

// containsFold matches a pre-lowercased needle against s.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
