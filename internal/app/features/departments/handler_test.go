package departments_test

import (
	"testing"

	"github.com/toonworks/studiohub/internal/app/features/departments"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	"github.com/toonworks/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*departments.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return departments.NewHandler(db, logger, errLog), db
}

func TestHandleCreate(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/departments", map[string]string{
		"name":        "Key Animation",
		"description": "Primary animation passes",
	}, testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/departments")

	got, err := departmentstore.New(db).GetByName(ctx, "key animation")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got.Description != "Primary animation passes" {
		t.Errorf("description: got %q", got.Description)
	}
}

func TestHandleCreate_PromotesFreeTextUnit(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// "Clean-Up" exists only as free text on a staff record. Creating a
	// department with that name gives it a stored record.
	fixtures.CreateUser(ctx, "Mina", "Park", "mina@toonworks.example", "Artist", "Clean-Up")

	req := testutil.NewFormRequest("/departments", map[string]string{
		"name": "Clean-Up",
	}, testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/departments")

	stored, err := departmentstore.New(db).GetByName(ctx, "Clean-Up")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if stored.Synthetic() {
		t.Error("promoted unit should not be synthetic")
	}
}

func TestHandleCreate_DuplicateName(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDepartment(ctx, "dept-bg", "Background", "")

	req := testutil.NewFormRequest("/departments", map[string]string{
		"name": "background",
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

func TestHandleEdit(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	dept := fixtures.CreateDepartment(ctx, "dept-bg", "Background", "")
	mgr := fixtures.CreateUser(ctx, "Joon", "Lee", "joon@toonworks.example", "", "")

	req := testutil.NewFormRequest("/departments/"+dept.ID+"/edit", map[string]string{
		"name":        "Background Art",
		"description": "Backgrounds and layouts",
		"manager":     mgr.ID,
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", dept.ID)
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/departments")

	got, err := departmentstore.New(db).GetByID(ctx, dept.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Background Art" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.Manager != mgr.ID {
		t.Errorf("manager: got %q, want %q", got.Manager, mgr.ID)
	}
}

func TestHandleDelete(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	dept := fixtures.CreateDepartment(ctx, "dept-bg", "Background", "")

	req := testutil.NewFormRequest("/departments/"+dept.ID+"/delete", nil, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", dept.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/departments")

	if _, err := departmentstore.New(db).GetByID(ctx, dept.ID); err != departmentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
