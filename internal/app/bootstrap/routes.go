// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/ashiquzzaman/mongocms/internal/app/features/accounts"
	countriesfeature "github.com/ashiquzzaman/mongocms/internal/app/features/countries"
	healthfeature "github.com/ashiquzzaman/mongocms/internal/app/features/health"
	"github.com/ashiquzzaman/mongocms/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema
// setup have completed. It initializes the session store, applies the
// session middleware, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName,
		appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged
	// in, making the current user available via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Accounts: register, login, logout, me
	accountsHandler := accountsfeature.NewHandler(deps.Store, logger)
	r.Mount("/accounts", accountsfeature.Routes(accountsHandler))

	// Countries reference data
	countriesHandler := countriesfeature.NewHandler(deps.Store, logger)
	r.Mount("/countries", countriesfeature.Routes(countriesHandler))

	return r, nil
}
