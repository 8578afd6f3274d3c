package jobs_test

import (
	"testing"

	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/features/jobs"
	jobstore "github.com/toonworks/studiohub/internal/app/store/jobs"
	"github.com/toonworks/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*jobs.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return jobs.NewHandler(db, logger, errLog), db
}

func TestHandleCreate(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/jobs", map[string]string{
		"name": "Effects Animator",
	}, testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/jobs")

	// The key comes from the normalized title, same scheme as the
	// built-in defaults.
	got, err := jobstore.New(db).GetByID(ctx, "effects_animator")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Effects Animator" {
		t.Errorf("name: got %q", got.Name)
	}
}

func TestHandleEdit_ShadowsDefault(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// "checker" is a built-in default with no stored record. Renaming it
	// writes one that shadows the default in merged listings.
	req := testutil.NewFormRequest("/jobs/checker/edit", map[string]string{
		"name": "Quality Checker",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "checker")
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/jobs")

	store := jobstore.New(db)
	got, err := store.GetByID(ctx, "checker")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Quality Checker" {
		t.Errorf("name: got %q", got.Name)
	}

	merged, err := store.ListWithDefaults(ctx)
	if err != nil {
		t.Fatalf("ListWithDefaults failed: %v", err)
	}
	for _, j := range merged {
		if j.ID == "checker" && j.Name != "Quality Checker" {
			t.Errorf("merged name: got %q, want Quality Checker", j.Name)
		}
	}
}

func TestHandleEdit_UnknownID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/jobs/nope/edit", map[string]string{
		"name": "Anything",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := testutil.NewRecorder()

	// The not-found path renders the error page, which panics without
	// initialized templates.
	func() {
		defer func() {
			_ = recover()
		}()
		h.HandleEdit(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}
}

func TestHandleDelete_RestoresDefault(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateJob(ctx, "checker", "Quality Checker")

	req := testutil.NewFormRequest("/jobs/checker/delete", nil, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "checker")
	rec := testutil.NewRecorder()

	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/jobs")

	merged, err := jobstore.New(db).ListWithDefaults(ctx)
	if err != nil {
		t.Fatalf("ListWithDefaults failed: %v", err)
	}
	found := false
	for _, j := range merged {
		if j.ID == "checker" {
			found = true
			if j.Name != "Checker" {
				t.Errorf("merged name: got %q, want Checker", j.Name)
			}
		}
	}
	if !found {
		t.Error("default job missing after delete")
	}
}
