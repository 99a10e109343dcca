package models

import "time"

// Assessment statuses. Empty means the record is still in progress.
const (
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
)

// Assessment is one course assessment being onboarded. The workflow flags
// are independent booleans, not an ordered progression: any flag may be set
// or cleared at any time.
type Assessment struct {
	ID string `bson:"id" json:"id"` // client- or server-assigned UUID, immutable

	Unit         string `bson:"unit" json:"school"`
	Subject      string `bson:"subject" json:"course"`
	CourseSiteID string `bson:"course_site_id,omitempty" json:"courseId,omitempty"`
	Semester     string `bson:"semester,omitempty" json:"semester,omitempty"`

	InstructorName  string `bson:"instructor_name,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string `bson:"instructor_email,omitempty" json:"instructorEmail,omitempty"`
	StudentCount    string `bson:"student_count,omitempty" json:"studentCount,omitempty"`

	AssessmentType string `bson:"assessment_type,omitempty" json:"assessmentType,omitempty"`
	AssessmentDate string `bson:"assessment_date,omitempty" json:"assessmentDate,omitempty"`
	Venue          string `bson:"venue,omitempty" json:"venue,omitempty"`
	OpenBook       string `bson:"open_book,omitempty" json:"openBook,omitempty"`

	// Onboarding workflow flags.
	FirstContact bool `bson:"first_contact" json:"firstContact"`
	DemoTraining bool `bson:"demo_training" json:"demoTraining"`
	MockSetup    bool `bson:"mock_setup" json:"mockSetup"`
	MockTest     bool `bson:"mock_test" json:"mockTest"`
	Approved     bool `bson:"approved" json:"approved"`
	VenueBooked  bool `bson:"venue_booked" json:"venueBooked"`
	Confirmed    bool `bson:"confirmed" json:"confirmed"`

	Platform      string   `bson:"platform,omitempty" json:"platform,omitempty"`
	QuestionTypes []string `bson:"question_types,omitempty" json:"questionTypes"`
	Status        string   `bson:"status,omitempty" json:"status"` // "", COMPLETED, or CANCELED
	Remarks       string   `bson:"remarks,omitempty" json:"remarks,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Canceled reports whether the record was canceled. Any other status,
// including empty, counts toward onboarding coverage.
func (a Assessment) Canceled() bool {
	return a.Status == StatusCanceled
}
