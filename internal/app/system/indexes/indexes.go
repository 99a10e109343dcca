// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAssessments(ctx, db); err != nil {
		problems = append(problems, "assessments: "+err.Error())
	}
	if err := ensureRefData(ctx, db); err != nil {
		problems = append(problems, "refdata: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureAssessments(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("assessments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Record ids are client-visible UUIDs; uniqueness is the
			// invariant the whole CRUD surface leans on.
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_id"),
		},
		{
			// List() always sorts newest-first.
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
	return err
}

func ensureRefData(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("refdata").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// The cascade lookups group by unit then subject.
			Keys:    bson.D{{Key: "unit", Value: 1}, {Key: "subject", Value: 1}},
			Options: options.Index().SetName("unit_subject"),
		},
	})
	return err
}
