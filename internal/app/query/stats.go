package query

import (
	"math"
	"sort"

	"github.com/linangms/DigiApp/internal/app/catalog"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// UnitCounts is the fixed-width workflow count vector for one unit. Each
// boolean flag bumps its bucket; the terminal status bumps exactly one of
// Completed/Canceled, or neither while the record is in progress.
type UnitCounts struct {
	Unit         string `json:"school"`
	FirstContact int    `json:"firstContact"`
	DemoTraining int    `json:"demoTraining"`
	MockSetup    int    `json:"mockSetup"`
	MockTest     int    `json:"mockTest"`
	Approved     int    `json:"approved"`
	Confirmed    int    `json:"confirmed"`
	Completed    int    `json:"completed"`
	Canceled     int    `json:"canceled"`
}

// Summary is the dashboard aggregation snapshot.
type Summary struct {
	TotalCatalogSubjects int     `json:"totalCourses"`
	OnboardedSubjects    int     `json:"onboardedCourses"`
	CoveragePercent      float64 `json:"coveragePercent"`
	TotalRecords         int     `json:"totalAssessments"`

	UnitBreakdown        []UnitCounts   `json:"schoolBreakdown"`
	PlatformDistribution map[string]int `json:"platformDistribution"`
}

// Summarize computes the aggregation snapshot from the record set and the
// catalog index. It is a pure function of its inputs and is recomputed on
// every observed mutation.
func Summarize(records []models.Assessment, idx *catalog.Index) Summary {
	s := Summary{
		TotalCatalogSubjects: idx.TotalSubjectCount(),
		TotalRecords:         len(records),
		PlatformDistribution: make(map[string]int, 3),
	}

	// A subject counts as onboarded when at least one of its records has
	// not been canceled.
	onboarded := make(map[string]bool)
	for _, a := range records {
		if !a.Canceled() {
			onboarded[a.Subject] = true
		}
	}
	s.OnboardedSubjects = len(onboarded)

	if s.TotalCatalogSubjects > 0 {
		pct := float64(s.OnboardedSubjects) / float64(s.TotalCatalogSubjects) * 100
		s.CoveragePercent = math.Round(pct*10) / 10
	}

	byUnit := make(map[string]*UnitCounts)
	for _, a := range records {
		uc := byUnit[a.Unit]
		if uc == nil {
			uc = &UnitCounts{Unit: a.Unit}
			byUnit[a.Unit] = uc
		}
		if a.FirstContact {
			uc.FirstContact++
		}
		if a.DemoTraining {
			uc.DemoTraining++
		}
		if a.MockSetup {
			uc.MockSetup++
		}
		if a.MockTest {
			uc.MockTest++
		}
		if a.Approved {
			uc.Approved++
		}
		if a.Confirmed {
			uc.Confirmed++
		}
		switch a.Status {
		case models.StatusCompleted:
			uc.Completed++
		case models.StatusCanceled:
			uc.Canceled++
		}
	}

	s.UnitBreakdown = make([]UnitCounts, 0, len(byUnit))
	for _, uc := range byUnit {
		s.UnitBreakdown = append(s.UnitBreakdown, *uc)
	}
	sort.Slice(s.UnitBreakdown, func(i, j int) bool {
		return s.UnitBreakdown[i].Unit < s.UnitBreakdown[j].Unit
	})

	// Only the recognized platforms appear in the distribution; all three
	// labels are always present so the chart keeps a stable shape.
	for _, p := range models.KnownPlatforms() {
		s.PlatformDistribution[p] = 0
	}
	for _, a := range records {
		if models.KnownPlatform(a.Platform) {
			s.PlatformDistribution[a.Platform]++
		}
	}

	return s
}
