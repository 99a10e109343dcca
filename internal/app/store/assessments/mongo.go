package assessmentstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linangms/DigiApp/internal/domain/models"
)

// Mongo stores assessments in the "assessments" collection. Records keep
// their own string id (a UUID assigned at creation) alongside the Mongo _id;
// all lookups go through the unique index on "id".
type Mongo struct {
	c *mongo.Collection
}

// NewMongo binds a store to the assessments collection of db.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("assessments")}
}

func (s *Mongo) List(ctx context.Context) ([]models.Assessment, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Assessment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) Create(ctx context.Context, a models.Assessment) (models.Assessment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Assessment{}, ErrDuplicateID
		}
		return models.Assessment{}, err
	}
	return a, nil
}

func (s *Mongo) Update(ctx context.Context, id string, p Patch) (models.Assessment, error) {
	set := p.setFields()
	if len(set) == 0 {
		// Nothing to merge; still report NotFound for unknown ids.
		var a models.Assessment
		err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&a)
		if err == mongo.ErrNoDocuments {
			return models.Assessment{}, ErrNotFound
		}
		return a, err
	}

	var updated models.Assessment
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.Assessment{}, ErrNotFound
	}
	if err != nil {
		return models.Assessment{}, err
	}
	return updated, nil
}

func (s *Mongo) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// setFields builds the $set document for the patch. Only supplied fields are
// written; the id and created_at of a record are immutable.
func (p Patch) setFields() bson.M {
	set := bson.M{}
	put := func(key string, v any) { set[key] = v }

	if p.Unit != nil {
		put("unit", *p.Unit)
	}
	if p.Subject != nil {
		put("subject", *p.Subject)
	}
	if p.CourseSiteID != nil {
		put("course_site_id", *p.CourseSiteID)
	}
	if p.Semester != nil {
		put("semester", *p.Semester)
	}
	if p.InstructorName != nil {
		put("instructor_name", *p.InstructorName)
	}
	if p.InstructorEmail != nil {
		put("instructor_email", *p.InstructorEmail)
	}
	if p.StudentCount != nil {
		put("student_count", *p.StudentCount)
	}
	if p.AssessmentType != nil {
		put("assessment_type", *p.AssessmentType)
	}
	if p.AssessmentDate != nil {
		put("assessment_date", *p.AssessmentDate)
	}
	if p.Venue != nil {
		put("venue", *p.Venue)
	}
	if p.OpenBook != nil {
		put("open_book", *p.OpenBook)
	}
	if p.FirstContact != nil {
		put("first_contact", *p.FirstContact)
	}
	if p.DemoTraining != nil {
		put("demo_training", *p.DemoTraining)
	}
	if p.MockSetup != nil {
		put("mock_setup", *p.MockSetup)
	}
	if p.MockTest != nil {
		put("mock_test", *p.MockTest)
	}
	if p.Approved != nil {
		put("approved", *p.Approved)
	}
	if p.VenueBooked != nil {
		put("venue_booked", *p.VenueBooked)
	}
	if p.Confirmed != nil {
		put("confirmed", *p.Confirmed)
	}
	if p.Platform != nil {
		put("platform", *p.Platform)
	}
	if p.QuestionTypes != nil {
		put("question_types", *p.QuestionTypes)
	}
	if p.Status != nil {
		put("status", *p.Status)
	}
	if p.Remarks != nil {
		put("remarks", *p.Remarks)
	}
	return set
}
