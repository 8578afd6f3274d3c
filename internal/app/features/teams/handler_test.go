package teams_test

import (
	"testing"

	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/features/teams"
	teamstore "github.com/toonworks/studiohub/internal/app/store/teams"
	"github.com/toonworks/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*teams.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return teams.NewHandler(db, logger, errLog), db
}

func TestHandleCreate(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	checker := fixtures.CreateUser(ctx, "Mina", "Park", "mina@toonworks.example", "Checker", "Key Animation")
	member := fixtures.CreateUser(ctx, "Joon", "Lee", "joon@toonworks.example", "Artist", "Key Animation")
	dept := fixtures.CreateDepartment(ctx, "dept-ka", "Key Animation", "")

	req := testutil.NewFormRequest("/teams", map[string]string{
		"name":    "KA Unit 1",
		"type":    dept.ID,
		"checker": checker.ID,
		"members": member.ID,
	}, testutil.AdminUser())
	rec := testutil.NewRecorder()

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/teams")

	got, err := teamstore.New(db).List(ctx, dept.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("teams: got %d, want 1", len(got))
	}
	if got[0].Name != "KA Unit 1" {
		t.Errorf("name: got %q", got[0].Name)
	}
	if got[0].Checker != checker.ID {
		t.Errorf("checker: got %q", got[0].Checker)
	}
	if len(got[0].Members) != 1 || got[0].Members[0] != member.ID {
		t.Errorf("members: got %v", got[0].Members)
	}
}

func TestHandleEdit(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "KA Unit 1", "dept-ka")
	checker := fixtures.CreateUser(ctx, "Mina", "Park", "mina@toonworks.example", "Checker", "")

	req := testutil.NewFormRequest("/teams/"+team.ID+"/edit", map[string]string{
		"name":    "KA Unit One",
		"type":    "dept-ka",
		"checker": checker.ID,
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", team.ID)
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/teams")

	got, err := teamstore.New(db).GetByID(ctx, team.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "KA Unit One" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.Checker != checker.ID {
		t.Errorf("checker: got %q", got.Checker)
	}
}

func TestHandleDelete(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "KA Unit 1", "dept-ka")

	req := testutil.NewFormRequest("/teams/"+team.ID+"/delete", nil, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", team.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/teams")

	if _, err := teamstore.New(db).GetByID(ctx, team.ID); err != teamstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
