// internal/app/features/departments/handler.go
package departments

import (
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for departments.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Departments *departmentstore.Store
	Users       *userstore.Store
}

// NewHandler constructs a departments Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      errLog,
		Departments: departmentstore.New(db),
		Users:       userstore.New(db),
	}
}
