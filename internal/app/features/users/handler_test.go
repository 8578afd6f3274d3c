package users_test

import (
	"testing"

	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/features/users"
	"github.com/toonworks/studiohub/internal/app/identity"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"github.com/toonworks/studiohub/internal/domain/models"
	"github.com/toonworks/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*users.Handler, *identity.Provider, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	provider := identity.New(db, nil, logger)
	errLog := uierrors.NewErrorLogger(logger)
	return users.NewHandler(db, logger, errLog, provider), provider, db
}

func TestHandleCreate(t *testing.T) {
	h, provider, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	role := fixtures.CreateRole(ctx, "role-checker", "SENIOR CHECKER", "review_work")
	dept := fixtures.CreateDepartment(ctx, "dept-ka", "Key Animation", "")

	req := testutil.NewFormRequest("/users", map[string]string{
		"first_name":    "Mina",
		"last_name":     "Park",
		"email":         "mina@toonworks.example",
		"password":      "secret123",
		"job_id":        "artist",
		"department_id": dept.ID,
		"role_id":       role.ID,
		"status":        "active",
	}, testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/users")

	// The identity account must exist and accept the credentials.
	account, err := provider.SignIn(ctx, "mina@toonworks.example", "secret123")
	if err != nil {
		t.Fatalf("SignIn after create failed: %v", err)
	}

	// The staff record is keyed by the account UID with affiliation names
	// denormalized from the selected ids.
	got, err := userstore.New(db).GetByID(ctx, account.UID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.JobTitle != "Artist" {
		t.Errorf("job title: got %q, want Artist", got.JobTitle)
	}
	if got.Department != "Key Animation" {
		t.Errorf("department: got %q", got.Department)
	}
	if got.Role != "SENIOR CHECKER" {
		t.Errorf("role: got %q", got.Role)
	}
}

func TestHandleCreate_DuplicateEmail(t *testing.T) {
	h, provider, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := provider.CreateAccount(ctx, "mina@toonworks.example", "secret123"); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	req := testutil.NewFormRequest("/users", map[string]string{
		"first_name": "Mina",
		"last_name":  "Park",
		"email":      "mina@toonworks.example",
		"password":   "secret123",
	}, testutil.AdminUser())
	rec := testutil.NewRecorder()

	// The duplicate path re-renders the form, which panics without
	// initialized templates.
	func() {
		defer func() {
			_ = recover()
		}()
		h.HandleCreate(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}
}

func TestHandleEdit_DenormalizesAffiliations(t *testing.T) {
	h, _, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Joon", "Lee", "joon@toonworks.example", "", "")
	role := fixtures.CreateRole(ctx, "role-pca", "KA - PCA", "track_progress")
	dept := fixtures.CreateDepartment(ctx, "dept-bg", "Background", "")

	req := testutil.NewFormRequest("/users/"+u.ID+"/edit", map[string]string{
		"first_name":    "Joon",
		"last_name":     "Lee",
		"email":         "joon@toonworks.example",
		"job_id":        "checker",
		"department_id": dept.ID,
		"role_id":       role.ID,
		"status":        "active",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", u.ID)
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/users")

	got, err := userstore.New(db).GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.JobTitle != "Checker" {
		t.Errorf("job title: got %q, want Checker", got.JobTitle)
	}
	if got.Department != "Background" {
		t.Errorf("department: got %q, want Background", got.Department)
	}
	if got.Role != "KA - PCA" {
		t.Errorf("role: got %q, want KA - PCA", got.Role)
	}
}

func TestHandleEdit_EmailChange(t *testing.T) {
	h, provider, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	account, err := provider.CreateAccount(ctx, "joon@toonworks.example", "secret123")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	store := userstore.New(db)
	created, err := store.Create(ctx, models.User{
		ID:        account.UID,
		FirstName: "Joon",
		LastName:  "Lee",
		Email:     account.Email,
	})
	if err != nil {
		t.Fatalf("Create user failed: %v", err)
	}

	admin := testutil.AdminUser()
	// Self-service is the only identity path without a service credential.
	admin.ID = account.UID

	req := testutil.NewFormRequest("/users/"+created.ID+"/edit", map[string]string{
		"first_name": "Joon",
		"last_name":  "Lee",
		"email":      "joon.lee@toonworks.example",
	}, admin)
	req = testutil.WithChiURLParam(req, "id", created.ID)
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/users")

	// Both the identity account and the staff record carry the new email.
	if _, err := provider.SignIn(ctx, "joon.lee@toonworks.example", "secret123"); err != nil {
		t.Errorf("SignIn with new email failed: %v", err)
	}
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "joon.lee@toonworks.example" {
		t.Errorf("email: got %q", got.Email)
	}
}

func TestHandleEdit_EmailChangeIdentityRejected(t *testing.T) {
	h, provider, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	account, err := provider.CreateAccount(ctx, "joon@toonworks.example", "secret123")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	store := userstore.New(db)
	created, err := store.Create(ctx, models.User{
		ID:        account.UID,
		FirstName: "Joon",
		LastName:  "Lee",
		Email:     account.Email,
	})
	if err != nil {
		t.Fatalf("Create user failed: %v", err)
	}

	// A different admin without a service credential: the identity chain
	// falls through to self-service, which rejects acting on another
	// account.
	req := testutil.NewFormRequest("/users/"+created.ID+"/edit", map[string]string{
		"first_name": "Joon",
		"last_name":  "Lee",
		"email":      "joon.lee@toonworks.example",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", created.ID)
	rec := testutil.NewRecorder()

	// The partial state re-renders the form with a warning, which panics
	// without initialized templates.
	func() {
		defer func() {
			_ = recover()
		}()
		h.HandleEdit(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}

	// The staff record carries the new email while the sign-in account
	// keeps the old one.
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "joon.lee@toonworks.example" {
		t.Errorf("staff record email: got %q, want joon.lee@toonworks.example", got.Email)
	}
	if _, err := provider.SignIn(ctx, "joon@toonworks.example", "secret123"); err != nil {
		t.Errorf("SignIn with old email failed: %v", err)
	}
}

func TestHandleDelete(t *testing.T) {
	h, _, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Mina", "Park", "mina@toonworks.example", "", "")

	req := testutil.NewFormRequest("/users/"+u.ID+"/delete", nil, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", u.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/users")

	if _, err := userstore.New(db).GetByID(ctx, u.ID); err != userstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
