// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/system/indexes"
	"github.com/linangms/DigiApp/internal/domain/models"
)

// ConnectDB establishes the MongoDB connection and returns the populated
// DBDeps. The connection is verified with a ping before startup continues.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the collection indexes and runs data migrations.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	return migratePlatformLabels(ctx, deps, logger)
}

// migratePlatformLabels renames the retired platform label on records that
// predate the switch to NTULearn with LDB. Safe to run on every startup.
func migratePlatformLabels(ctx context.Context, deps DBDeps, logger *zap.Logger) error {
	res, err := deps.MongoDatabase.Collection("assessments").UpdateMany(ctx,
		bson.M{"platform": models.LegacyPlatformLDB},
		bson.M{"$set": bson.M{"platform": models.PlatformNTULearn}},
	)
	if err != nil {
		return fmt.Errorf("platform label migration: %w", err)
	}
	if res.ModifiedCount > 0 {
		logger.Info("migrated legacy platform labels",
			zap.Int64("records", res.ModifiedCount))
	}
	return nil
}
