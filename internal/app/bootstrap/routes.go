// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	chatfeature "github.com/toonworks/studiohub/internal/app/features/chat"
	dashboardfeature "github.com/toonworks/studiohub/internal/app/features/dashboard"
	departmentsfeature "github.com/toonworks/studiohub/internal/app/features/departments"
	errorsfeature "github.com/toonworks/studiohub/internal/app/features/errors"
	healthfeature "github.com/toonworks/studiohub/internal/app/features/health"
	homefeature "github.com/toonworks/studiohub/internal/app/features/home"
	jobsfeature "github.com/toonworks/studiohub/internal/app/features/jobs"
	loginfeature "github.com/toonworks/studiohub/internal/app/features/login"
	logoutfeature "github.com/toonworks/studiohub/internal/app/features/logout"
	profilefeature "github.com/toonworks/studiohub/internal/app/features/profile"
	rolesfeature "github.com/toonworks/studiohub/internal/app/features/roles"
	teamsfeature "github.com/toonworks/studiohub/internal/app/features/teams"
	usersfeature "github.com/toonworks/studiohub/internal/app/features/users"
	"github.com/toonworks/studiohub/internal/app/identity"
	"github.com/toonworks/studiohub/internal/app/system/auth"
	"go.uber.org/zap"
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
// StudioHub initializes the template engine, applies session and CSRF
// middleware, and mounts feature routers for all application areas:
// home, login, dashboards, the staff directory, departments, jobs,
// roles, teams, chat, and profile.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// The identity provider backs sign-in and email changes. The admin
	// credential is optional; without it email changes are self-service.
	adminCred, err := identity.LoadAdminCredential(appCfg.IdentityAdminCredentials)
	if err != nil {
		logger.Error("loading identity admin credential failed", zap.Error(err))
		return nil, err
	}
	provider := identity.New(deps.MongoDatabase, adminCred, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for all form posts. Templates embed the token via
	// the shared view data.
	r.Use(csrf.Protect(csrfKey(appCfg.SessionKey), csrf.Secure(secure), csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public landing page
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, logger, errLog, sessionMgr, provider)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Role-based dashboards
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Staff directory (admin console)
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger, errLog, provider)
	r.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))

	// Affiliation management (admin console)
	departmentsHandler := departmentsfeature.NewHandler(deps.MongoDatabase, logger, errLog)
	r.Mount("/departments", departmentsfeature.Routes(departmentsHandler, sessionMgr))

	jobsHandler := jobsfeature.NewHandler(deps.MongoDatabase, logger, errLog)
	r.Mount("/jobs", jobsfeature.Routes(jobsHandler, sessionMgr))

	rolesHandler := rolesfeature.NewHandler(deps.MongoDatabase, logger, errLog)
	r.Mount("/roles", rolesfeature.Routes(rolesHandler, sessionMgr))

	teamsHandler := teamsfeature.NewHandler(deps.MongoDatabase, logger, errLog)
	r.Mount("/teams", teamsfeature.Routes(teamsHandler, sessionMgr))

	// Department chat (any signed-in user)
	chatHandler := chatfeature.NewHandler(deps.MongoDatabase, logger, errLog)
	r.Mount("/chat", chatfeature.Routes(chatHandler, sessionMgr))

	// Self-service profile
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger, errLog, provider)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	return r, nil
}

// csrfKey derives the 32-byte CSRF signing key from the session key. A
// short session key falls back to a random key, which invalidates
// in-flight tokens on restart.
func csrfKey(sessionKey string) []byte {
	if len(sessionKey) >= 32 {
		return []byte(sessionKey)[:32]
	}
	return securecookie.GenerateRandomKey(32)
}
