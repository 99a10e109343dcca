package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linangms/DigiApp/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAssessment inserts a minimal assessment record and returns it.
func (f *Fixtures) CreateAssessment(ctx context.Context, id, unit, subject string) models.Assessment {
	f.t.Helper()

	a := models.Assessment{
		ID:        id,
		Unit:      unit,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("assessments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assessment: %v", err)
	}
	return a
}

// ReplaceCatalog wholesale-replaces the refdata collection with entries built
// from the given (unit, subject, siteID) triples.
func (f *Fixtures) ReplaceCatalog(ctx context.Context, triples [][3]string) []models.CatalogEntry {
	f.t.Helper()

	coll := f.db.Collection("refdata")
	if err := coll.Drop(ctx); err != nil {
		f.t.Fatalf("failed to drop refdata: %v", err)
	}

	entries := make([]models.CatalogEntry, 0, len(triples))
	docs := make([]any, 0, len(triples))
	for _, tr := range triples {
		e := models.CatalogEntry{Unit: tr[0], Subject: tr[1], SiteID: tr[2]}
		entries = append(entries, e)
		docs = append(docs, e)
	}
	if len(docs) > 0 {
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			f.t.Fatalf("failed to insert test catalog: %v", err)
		}
	}
	return entries
}
