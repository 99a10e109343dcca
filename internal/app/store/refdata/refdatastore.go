// Package refdatastore holds the uploaded course catalog. The catalog is a
// latest-snapshot dataset: every upload wholesale-replaces the previous one,
// and the in-memory catalog index is rebuilt from List afterwards.
package refdatastore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linangms/DigiApp/internal/domain/models"
)

const (
	collection = "refdata"
	staging    = "refdata_staging"
)

type Store struct {
	db *mongo.Database
	// atomicReplace stages uploads into a temp collection and renames it
	// over the live one, so concurrent readers never observe a half-replaced
	// catalog. Off by default to preserve the historical two-step behavior
	// (delete-all followed by insert-all).
	atomicReplace bool
}

// New binds a store to the refdata collection of db.
func New(db *mongo.Database, atomicReplace bool) *Store {
	return &Store{db: db, atomicReplace: atomicReplace}
}

// List returns every catalog entry.
func (s *Store) List(ctx context.Context) ([]models.CatalogEntry, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CatalogEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of catalog entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

// ReplaceAll swaps the stored catalog for entries. An empty input clears the
// catalog.
func (s *Store) ReplaceAll(ctx context.Context, entries []models.CatalogEntry) error {
	if s.atomicReplace {
		return s.replaceAtomic(ctx, entries)
	}
	return s.replaceTwoStep(ctx, entries)
}

// replaceTwoStep is the historical behavior: delete-all then insert-all as
// two separate operations. A reader between the two sees an empty catalog.
func (s *Store) replaceTwoStep(ctx context.Context, entries []models.CatalogEntry) error {
	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	_, err := coll.InsertMany(ctx, asDocs(entries))
	return err
}

// replaceAtomic loads entries into a staging collection, then renames it over
// the live one with dropTarget. The rename is atomic on the server.
func (s *Store) replaceAtomic(ctx context.Context, entries []models.CatalogEntry) error {
	stage := s.db.Collection(staging)
	if err := stage.Drop(ctx); err != nil {
		return err
	}
	if len(entries) == 0 {
		// Nothing to stage; dropping the live collection is a single step.
		return s.db.Collection(collection).Drop(ctx)
	}
	if _, err := stage.InsertMany(ctx, asDocs(entries)); err != nil {
		return err
	}

	admin := s.db.Client().Database("admin")
	return admin.RunCommand(ctx, bson.D{
		{Key: "renameCollection", Value: s.db.Name() + "." + staging},
		{Key: "to", Value: s.db.Name() + "." + collection},
		{Key: "dropTarget", Value: true},
	}).Err()
}

func asDocs(entries []models.CatalogEntry) []any {
	docs := make([]any, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, e)
	}
	return docs
}
