// internal/app/features/teams/handler.go
package teams

import (
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	teamstore "github.com/toonworks/studiohub/internal/app/store/teams"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for teams.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Teams       *teamstore.Store
	Users       *userstore.Store
	Departments *departmentstore.Store
}

// NewHandler constructs a teams Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      errLog,
		Teams:       teamstore.New(db),
		Users:       userstore.New(db),
		Departments: departmentstore.New(db),
	}
}
