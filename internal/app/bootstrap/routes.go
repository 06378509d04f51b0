// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	allocationfeature "github.com/dalemusser/hostelhub/internal/app/features/allocation"
	applicationsfeature "github.com/dalemusser/hostelhub/internal/app/features/applications"
	healthfeature "github.com/dalemusser/hostelhub/internal/app/features/health"
	hostelsfeature "github.com/dalemusser/hostelhub/internal/app/features/hostels"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. HostelHub mounts the health
// probes and the three JSON feature areas: the hostel/room catalog, the
// application lifecycle, and the allocation flow.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	hostelsHandler := hostelsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/hostels", hostelsfeature.Routes(hostelsHandler))

	applicationsHandler := applicationsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/applications", applicationsfeature.Routes(applicationsHandler))

	allocationHandler := allocationfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/allocation", allocationfeature.Routes(allocationHandler))

	return r, nil
}
