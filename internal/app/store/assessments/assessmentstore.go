// Package assessmentstore is the CRUD surface over assessment records. The
// filter and aggregation engines only ever consume the output of List; every
// mutation flows through Create/Update/Delete, and callers re-derive their
// filtered and aggregated views after each one.
package assessmentstore

import (
	"context"
	"errors"

	"github.com/linangms/DigiApp/internal/domain/models"
)

var (
	// ErrNotFound is returned by Update and Delete for an unknown record id.
	ErrNotFound = errors.New("assessment not found")
	// ErrDuplicateID is returned by Create when the supplied id already exists.
	ErrDuplicateID = errors.New("an assessment with this id already exists")
)

// Store is the record store facade. Mongo is the production implementation;
// Memory backs tests and any collaborator that wants a plain snapshot store.
type Store interface {
	// List returns all records sorted by CreatedAt descending.
	List(ctx context.Context) ([]models.Assessment, error)
	// Create persists a new record, assigning ID and CreatedAt when unset.
	// Workflow flags default to false.
	Create(ctx context.Context, a models.Assessment) (models.Assessment, error)
	// Update applies a partial-field merge: only fields set in the patch are
	// overwritten. The stored record is unchanged when an error is returned.
	Update(ctx context.Context, id string, p Patch) (models.Assessment, error)
	// Delete removes a record permanently. There is no soft delete.
	Delete(ctx context.Context, id string) error
}

// Patch carries the fields of a partial update. Nil fields are left
// untouched, matching the PUT merge semantics of the API: a toggle sends a
// single flag, a full-form edit sends every editable field.
type Patch struct {
	Unit         *string `json:"school"`
	Subject      *string `json:"course"`
	CourseSiteID *string `json:"courseId"`
	Semester     *string `json:"semester"`

	InstructorName  *string `json:"instructorName"`
	InstructorEmail *string `json:"instructorEmail"`
	StudentCount    *string `json:"studentCount"`

	AssessmentType *string `json:"assessmentType"`
	AssessmentDate *string `json:"assessmentDate"`
	Venue          *string `json:"venue"`
	OpenBook       *string `json:"openBook"`

	FirstContact *bool `json:"firstContact"`
	DemoTraining *bool `json:"demoTraining"`
	MockSetup    *bool `json:"mockSetup"`
	MockTest     *bool `json:"mockTest"`
	Approved     *bool `json:"approved"`
	VenueBooked  *bool `json:"venueBooked"`
	Confirmed    *bool `json:"confirmed"`

	Platform      *string   `json:"platform"`
	QuestionTypes *[]string `json:"questionTypes"`
	Status        *string   `json:"status"`
	Remarks       *string   `json:"remarks"`
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// applyTo merges the patch into a copy of a and returns it.
func (p Patch) applyTo(a models.Assessment) models.Assessment {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setStr(&a.Unit, p.Unit)
	setStr(&a.Subject, p.Subject)
	setStr(&a.CourseSiteID, p.CourseSiteID)
	setStr(&a.Semester, p.Semester)
	setStr(&a.InstructorName, p.InstructorName)
	setStr(&a.InstructorEmail, p.InstructorEmail)
	setStr(&a.StudentCount, p.StudentCount)
	setStr(&a.AssessmentType, p.AssessmentType)
	setStr(&a.AssessmentDate, p.AssessmentDate)
	setStr(&a.Venue, p.Venue)
	setStr(&a.OpenBook, p.OpenBook)
	setBool(&a.FirstContact, p.FirstContact)
	setBool(&a.DemoTraining, p.DemoTraining)
	setBool(&a.MockSetup, p.MockSetup)
	setBool(&a.MockTest, p.MockTest)
	setBool(&a.Approved, p.Approved)
	setBool(&a.VenueBooked, p.VenueBooked)
	setBool(&a.Confirmed, p.Confirmed)
	setStr(&a.Platform, p.Platform)
	if p.QuestionTypes != nil {
		a.QuestionTypes = append([]string(nil), (*p.QuestionTypes)...)
	}
	setStr(&a.Status, p.Status)
	setStr(&a.Remarks, p.Remarks)
	return a
}
