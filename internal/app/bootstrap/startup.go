// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	refdatastore "github.com/linangms/DigiApp/internal/app/store/refdata"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. DigiApp
// has no caches to warm; it logs the catalog size so an empty reference
// dataset is visible in the startup log rather than discovered later as a
// zero-percent dashboard.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("starting digiapp", zap.String("base_url", appCfg.BaseURL))

	catalog := refdatastore.New(deps.MongoDatabase, appCfg.CatalogAtomicReplace)
	n, err := catalog.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Warn("reference catalog is empty; upload one via POST /api/refdata/upload")
	} else {
		logger.Info("reference catalog loaded", zap.Int64("entries", n))
	}
	return nil
}
