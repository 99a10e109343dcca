package catalog_test

import (
	"reflect"
	"testing"

	"github.com/linangms/DigiApp/internal/app/catalog"
)

func TestResolve_EmptySelection(t *testing.T) {
	idx, err := catalog.Build(testCatalog(), catalog.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	c := catalog.Resolve(idx, catalog.Selection{})
	if c.SubjectsEnabled || c.SiteIDsEnabled {
		t.Error("expected both child levels disabled for empty selection")
	}
	if len(c.Subjects) != 0 || len(c.SiteIDs) != 0 {
		t.Errorf("expected empty choices, got %v / %v", c.Subjects, c.SiteIDs)
	}
}

func TestResolve_UnitSelected(t *testing.T) {
	idx, err := catalog.Build(testCatalog(), catalog.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	c := catalog.Resolve(idx, catalog.Selection{Unit: "SPMS"})
	if !c.SubjectsEnabled {
		t.Error("expected subjects enabled once a unit is selected")
	}
	if c.SiteIDsEnabled {
		t.Error("expected sites disabled until a subject is selected")
	}
	want := []string{"CY1308", "MH1810"}
	if !reflect.DeepEqual(c.Subjects, want) {
		t.Errorf("Subjects = %v, want %v", c.Subjects, want)
	}
}

func TestResolve_UnitAndSubjectSelected(t *testing.T) {
	idx, err := catalog.Build(testCatalog(), catalog.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	c := catalog.Resolve(idx, catalog.Selection{Unit: "SPMS", Subject: "MH1810"})
	if !c.SubjectsEnabled || !c.SiteIDsEnabled {
		t.Error("expected both child levels enabled")
	}
	want := []string{"MH1810-2024-S1", "MH1810-2024-S2"}
	if !reflect.DeepEqual(c.SiteIDs, want) {
		t.Errorf("SiteIDs = %v, want %v", c.SiteIDs, want)
	}
}

func TestResolve_InconsistentSelection(t *testing.T) {
	idx, err := catalog.Build(testCatalog(), catalog.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// AB1201 belongs to NBS, not SPMS: the site level degrades to empty
	// instead of failing.
	c := catalog.Resolve(idx, catalog.Selection{Unit: "SPMS", Subject: "AB1201"})
	if !c.SiteIDsEnabled {
		t.Error("expected site level enabled even for a mismatched subject")
	}
	if len(c.SiteIDs) != 0 {
		t.Errorf("SiteIDs = %v, want empty for mismatched subject", c.SiteIDs)
	}
}

func TestResolve_SubjectWithoutUnit(t *testing.T) {
	idx, err := catalog.Build(testCatalog(), catalog.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// A stale subject with the unit cleared cascades a full reset downward.
	c := catalog.Resolve(idx, catalog.Selection{Subject: "MH1810"})
	if c.SubjectsEnabled || c.SiteIDsEnabled {
		t.Error("expected full reset when the unit is cleared")
	}
}

func TestResolve_Rederivable(t *testing.T) {
	idx, err := catalog.Build(testCatalog(), catalog.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Resolving the same selection twice yields the same cascade; no hidden
	// state accumulates between calls.
	sel := catalog.Selection{Unit: "NBS", Subject: "AB1201"}
	first := catalog.Resolve(idx, sel)
	catalog.Resolve(idx, catalog.Selection{Unit: "SBS"})
	second := catalog.Resolve(idx, sel)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve not re-derivable: %+v vs %+v", first, second)
	}
}
