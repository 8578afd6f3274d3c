// internal/app/features/jobs/handler.go
package jobs

import (
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	jobstore "github.com/toonworks/studiohub/internal/app/store/jobs"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the job reference table.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Jobs  *jobstore.Store
	Users *userstore.Store
}

// NewHandler constructs a jobs Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
		Jobs:   jobstore.New(db),
		Users:  userstore.New(db),
	}
}
