// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/toonworks/studiohub/internal/app/resources"
	chatstore "github.com/toonworks/studiohub/internal/app/store/chat"
	"github.com/toonworks/studiohub/internal/app/system/workers"
	"go.uber.org/zap"
)

// chatPurge runs for the life of the process. Started here, stopped in
// Shutdown.
var chatPurge *workers.ChatPurge

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates), warm caches, or perform
// any app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	chatPurge = workers.NewChatPurge(chatstore.New(deps.MongoDatabase), logger, appCfg.ChatPurgeInterval, appCfg.ChatRetention)
	chatPurge.Start()

	return nil
}
