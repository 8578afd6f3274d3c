// internal/app/features/chat/handler.go
package chat

import (
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	chatstore "github.com/toonworks/studiohub/internal/app/store/chat"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// historyLimit bounds how many messages the room page loads initially.
const historyLimit = 100

// Handler is the feature-level entry point for the department chat.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Chat        *chatstore.Store
	Users       *userstore.Store
	Departments *departmentstore.Store
}

// NewHandler constructs a chat Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      errLog,
		Chat:        chatstore.New(db),
		Users:       userstore.New(db),
		Departments: departmentstore.New(db),
	}
}
