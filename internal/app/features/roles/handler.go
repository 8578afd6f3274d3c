// internal/app/features/roles/handler.go
package roles

import (
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for roles.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Roles *rolestore.Store
	Users *userstore.Store
}

// NewHandler constructs a roles Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
		Roles:  rolestore.New(db),
		Users:  userstore.New(db),
	}
}
