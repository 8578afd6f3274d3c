package teamstore_test

import (
	"testing"

	teamstore "github.com/toonworks/studiohub/internal/app/store/teams"
	"github.com/toonworks/studiohub/internal/domain/models"
	"github.com/toonworks/studiohub/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Team{
		Name:    "  KA Team A ",
		Type:    "dept-ka",
		Checker: "user-1",
		Members: []string{"user-1", "user-2"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "KA Team A" {
		t.Errorf("name not trimmed: %q", created.Name)
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d teams, want 1", len(all))
	}
}

func TestStore_List_TypeFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeam(ctx, "KA Team", "dept-ka")
	fixtures.CreateTeam(ctx, "BG Team", "dept-bg")

	got, err := store.List(ctx, "dept-bg")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "BG Team" {
		t.Errorf("type filter: got %d teams", len(got))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Team{Name: "KA Team"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, models.Team{
		Name:          "KA Team A",
		Checker:       "user-1",
		BackupChecker: "user-2",
		Members:       []string{"user-3"},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Checker != "user-1" || got.BackupChecker != "user-2" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Update(ctx, "missing", models.Team{Name: "X"}); err != teamstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	teams := []models.Team{
		{Name: "A", Type: "dept-ka", Checker: "u1"},
		{Name: "B", Type: "dept-ka"},
		{Name: "C", Type: "dept-bg", Checker: "u2"},
		{Name: "D"},
	}

	st := teamstore.ComputeStats(teams)
	if st.Total != 4 {
		t.Errorf("Total: got %d, want 4", st.Total)
	}
	if st.Active != 2 {
		t.Errorf("Active: got %d, want 2", st.Active)
	}
	if st.UniqueTypes != 2 {
		t.Errorf("UniqueTypes: got %d, want 2", st.UniqueTypes)
	}
}
