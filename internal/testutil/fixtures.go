package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a directory user with the given name, email, job
// title, and department name. Returns the stored user.
func (f *Fixtures) CreateUser(ctx context.Context, first, last, email, jobTitle, department string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         uuid.NewString(),
		FirstName:  first,
		LastName:   last,
		Email:      normalize.Email(email),
		JobTitle:   jobTitle,
		Department: department,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateUserWithRoles inserts a user whose roles field was stored as an
// array.
func (f *Fixtures) CreateUserWithRoles(ctx context.Context, first, last, email string, roles ...string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Email:     normalize.Email(email),
		Roles:     models.RoleList{Values: roles},
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateJob inserts a job record keyed by the given id.
func (f *Fixtures) CreateJob(ctx context.Context, id, name string) models.Job {
	f.t.Helper()

	now := time.Now().UTC()
	j := models.Job{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := f.db.Collection("jobs").InsertOne(ctx, j); err != nil {
		f.t.Fatalf("failed to create test job: %v", err)
	}
	return j
}

// CreateDepartment inserts a department record.
func (f *Fixtures) CreateDepartment(ctx context.Context, id, name, manager string) models.Department {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Department{
		ID:        id,
		Name:      name,
		NameKey:   normalize.Key(name),
		Manager:   manager,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("sections").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test department: %v", err)
	}
	return d
}

// CreateRole inserts a role record keyed by the given id.
func (f *Fixtures) CreateRole(ctx context.Context, id, name string, permissions ...string) models.Role {
	f.t.Helper()

	now := time.Now().UTC()
	r := models.Role{
		ID:          id,
		Name:        name,
		NameKey:     normalize.Key(name),
		Permissions: permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("roles").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test role: %v", err)
	}
	return r
}

// CreateLegacyRole inserts a role whose storage key differs from its
// legacy id field, for exercising dual lookup paths.
func (f *Fixtures) CreateLegacyRole(ctx context.Context, storageKey, legacyID, name string) models.Role {
	f.t.Helper()

	now := time.Now().UTC()
	r := models.Role{
		ID:        storageKey,
		LegacyID:  legacyID,
		Name:      name,
		NameKey:   normalize.Key(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("roles").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create legacy test role: %v", err)
	}
	return r
}

// CreateTeam inserts a team record with the given member user IDs.
func (f *Fixtures) CreateTeam(ctx context.Context, name, teamType string, members ...string) models.Team {
	f.t.Helper()

	now := time.Now().UTC()
	tm := models.Team{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      teamType,
		Members:   members,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("teams").InsertOne(ctx, tm); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return tm
}

// CreateChatMessage inserts a chat message in the given department.
func (f *Fixtures) CreateChatMessage(ctx context.Context, senderID, senderName, departmentID, body string) models.ChatMessage {
	f.t.Helper()

	m := models.ChatMessage{
		ID:           uuid.NewString(),
		SenderID:     senderID,
		SenderName:   senderName,
		DepartmentID: departmentID,
		Body:         body,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("chat_messages").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test chat message: %v", err)
	}
	return m
}
