// internal/app/features/users/handler.go
package users

import (
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/identity"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	jobstore "github.com/toonworks/studiohub/internal/app/store/jobs"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for staff management.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	Identity *identity.Provider

	Users       *userstore.Store
	Jobs        *jobstore.Store
	Departments *departmentstore.Store
	Roles       *rolestore.Store
}

// NewHandler constructs a staff Handler bound to a DB, logger, and the
// identity provider.
func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger, provider *identity.Provider) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      errLog,
		Identity:    provider,
		Users:       userstore.New(db),
		Jobs:        jobstore.New(db),
		Departments: departmentstore.New(db),
		Roles:       rolestore.New(db),
	}
}
