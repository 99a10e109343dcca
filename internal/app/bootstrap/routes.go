// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/linangms/DigiApp/internal/app/catalog"
	assessmentsfeature "github.com/linangms/DigiApp/internal/app/features/assessments"
	healthfeature "github.com/linangms/DigiApp/internal/app/features/health"
	refdatafeature "github.com/linangms/DigiApp/internal/app/features/refdata"
	statsfeature "github.com/linangms/DigiApp/internal/app/features/stats"
	assessmentstore "github.com/linangms/DigiApp/internal/app/store/assessments"
	refdatastore "github.com/linangms/DigiApp/internal/app/store/refdata"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// DigiApp mounts the JSON API under /api, the health endpoint for load
// balancers at /health, and the static frontend bundle at /static.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	assessments := assessmentstore.NewMongo(deps.MongoDatabase)
	refdata := refdatastore.New(deps.MongoDatabase, appCfg.CatalogAtomicReplace)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static frontend bundle with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))
	r.Handle("/", fileserver.Handler("/", "public"))

	// Assessment records
	assessHandler := assessmentsfeature.NewHandler(assessments, logger)
	r.Mount("/api/assessments", assessmentsfeature.Routes(assessHandler))

	// Reference catalog
	refdataHandler := refdatafeature.NewHandler(refdata, logger, appCfg.CatalogValidateAllRows)
	r.Mount("/api/refdata", refdatafeature.Routes(refdataHandler))

	// Dashboard aggregates
	statsHandler := statsfeature.NewHandler(assessments, refdata, logger,
		catalog.Options{ValidateAllRows: appCfg.CatalogValidateAllRows})
	r.Mount("/api/stats", statsfeature.Routes(statsHandler))

	return r, nil
}
