// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/toonworks/studiohub/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the app relies on. It runs once at
// startup, after ConnectDB and before Startup, and is idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
