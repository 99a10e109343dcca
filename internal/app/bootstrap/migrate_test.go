package bootstrap

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/domain/models"
	"github.com/linangms/DigiApp/internal/testutil"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestMigratePlatformLabels_RenamesLegacy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection("assessments")
	docs := []any{
		bson.M{"id": "a1", "platform": models.LegacyPlatformLDB},
		bson.M{"id": "a2", "platform": models.PlatformExamena},
		bson.M{"id": "a3", "platform": models.LegacyPlatformLDB},
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		t.Fatalf("failed to seed records: %v", err)
	}

	deps := DBDeps{MongoDatabase: db}
	if err := migratePlatformLabels(ctx, deps, testLogger()); err != nil {
		t.Fatalf("migratePlatformLabels failed: %v", err)
	}

	n, err := coll.CountDocuments(ctx, bson.M{"platform": models.LegacyPlatformLDB})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("%d records still carry the legacy label", n)
	}

	n, err = coll.CountDocuments(ctx, bson.M{"platform": models.PlatformNTULearn})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("migrated count = %d, want 2", n)
	}

	// Unrelated platforms stay untouched.
	n, err = coll.CountDocuments(ctx, bson.M{"platform": models.PlatformExamena})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Examena count = %d, want 1", n)
	}
}

func TestMigratePlatformLabels_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection("assessments")
	if _, err := coll.InsertOne(ctx, bson.M{"id": "a1", "platform": models.LegacyPlatformLDB}); err != nil {
		t.Fatal(err)
	}

	deps := DBDeps{MongoDatabase: db}
	for i := 0; i < 2; i++ {
		if err := migratePlatformLabels(ctx, deps, testLogger()); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	n, err := coll.CountDocuments(ctx, bson.M{"platform": models.PlatformNTULearn})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}
