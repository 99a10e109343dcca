package assessmentstore_test

import (
	"context"
	"testing"
	"time"

	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	"github.com/linangms/DigiApp/internal/domain/models"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestMemory_Create(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Assessment{Unit: "SBS", Subject: "BS1009"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.FirstContact || created.Confirmed || created.Approved {
		t.Error("expected workflow flags to default to false")
	}
}

func TestMemory_Create_KeepsClientID(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Assessment{ID: "client-uuid-1", Unit: "SBS", Subject: "BS1009"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != "client-uuid-1" {
		t.Errorf("ID = %q, want the client-assigned id", created.ID)
	}

	_, err = store.Create(ctx, models.Assessment{ID: "client-uuid-1"})
	if err != assessmentstore.ErrDuplicateID {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestMemory_List_SortedByCreatedAtDesc(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		_, err := store.Create(ctx, models.Assessment{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Create %s failed: %v", id, err)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i, a := range records {
		if a.ID != want[i] {
			t.Fatalf("List order = %v..., want %v", a.ID, want)
		}
	}
}

func TestMemory_Update_PartialMerge(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Assessment{
		Unit: "SBS", Subject: "BS1009",
		InstructorName: "Tan Mei Ling",
		Platform:       models.PlatformExamena,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A single-field toggle must leave every other field alone.
	updated, err := store.Update(ctx, created.ID, assessmentstore.Patch{FirstContact: boolptr(true)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.FirstContact {
		t.Error("expected FirstContact true after toggle")
	}
	if updated.InstructorName != "Tan Mei Ling" || updated.Platform != models.PlatformExamena {
		t.Errorf("patch clobbered unrelated fields: %+v", updated)
	}
	if updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("id and created_at must be immutable")
	}
}

func TestMemory_Update_Status(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	created, _ := store.Create(ctx, models.Assessment{Unit: "SBS", Subject: "BS1009"})

	updated, err := store.Update(ctx, created.ID, assessmentstore.Patch{Status: strptr(models.StatusCanceled)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Canceled() {
		t.Errorf("Status = %q, want CANCELED", updated.Status)
	}

	// Clearing the status puts the record back in progress.
	updated, err = store.Update(ctx, created.ID, assessmentstore.Patch{Status: strptr("")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "" {
		t.Errorf("Status = %q, want empty", updated.Status)
	}
}

func TestMemory_Update_NotFound(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	_, err := store.Update(ctx, "no-such-id", assessmentstore.Patch{Approved: boolptr(true)})
	if err != assessmentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_Delete(t *testing.T) {
	store := assessmentstore.NewMemory()
	ctx := context.Background()

	created, _ := store.Create(ctx, models.Assessment{Unit: "SBS", Subject: "BS1009"})

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, a := range records {
		if a.ID == created.ID {
			t.Error("deleted record still listed")
		}
	}

	// A later update of the deleted id fails NotFound.
	if _, err := store.Update(ctx, created.ID, assessmentstore.Patch{Approved: boolptr(true)}); err != assessmentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, created.ID); err != assessmentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
