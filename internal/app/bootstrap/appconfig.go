// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to StudioHub lives. Add fields
// here as the application grows. The struct is passed to most lifecycle
// hooks, so any configuration needed during startup, request handling,
// or shutdown should live here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: studiohub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Identity provider configuration. The credential file unlocks the
	// privileged email-change path; without it, accounts change their
	// own email through the self-service flow only.
	IdentityAdminCredentials string // Path to the admin credential JSON file (blank disables)

	// Department chat retention
	ChatRetention     time.Duration // How long chat messages are kept
	ChatPurgeInterval time.Duration // How often the purge worker runs

	// Base URL for absolute links
	BaseURL string // e.g., "https://hub.toonworks.com" or "http://localhost:3000"
}
