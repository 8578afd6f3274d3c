package departmentstore_test

import (
	"testing"

	departmentstore "github.com/toonworks/studiohub/internal/app/store/departments"
	"github.com/toonworks/studiohub/internal/domain/models"
	"github.com/toonworks/studiohub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Department{
		Name:        "  Key Animation ",
		Description: "KA unit",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "Key Animation" {
		t.Errorf("name not trimmed: %q", created.Name)
	}
	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Synthetic() {
		t.Error("stored department must not report synthetic")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Department{Name: "Cleanup"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Department{Name: "CLEANUP"}); err != departmentstore.ErrDuplicateName {
		t.Errorf("expected ErrDuplicateName for case-insensitive duplicate, got %v", err)
	}
}

func TestStore_ListMerged_Synthetic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDepartment(ctx, "dept-ka", "Key Animation", "")
	u := fixtures.CreateUser(ctx, "Mina", "Park", "mina@example.com", "Artist", "BACKGROUND")

	merged, err := store.ListMerged(ctx, []models.User{u})
	if err != nil {
		t.Fatalf("ListMerged failed: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("got %d departments, want 2", len(merged))
	}

	// Sorted by normalized name: BACKGROUND before Key Animation.
	if !merged[0].Synthetic() {
		t.Errorf("expected BACKGROUND to be synthetic, got %+v", merged[0])
	}
	if merged[0].ID != "BACKGROUND" {
		t.Errorf("synthetic unit id must equal name, got %q", merged[0].ID)
	}
	if merged[1].Synthetic() {
		t.Errorf("stored Key Animation must not be synthetic")
	}
}

func TestStore_PromoteSynthetic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Mina", "Park", "mina@example.com", "Artist", "BACKGROUND")

	// Creating a department with the synthetic unit's name promotes it.
	promoted, err := store.Create(ctx, models.Department{Name: "BACKGROUND", Manager: u.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	merged, err := store.ListMerged(ctx, []models.User{u})
	if err != nil {
		t.Fatalf("ListMerged failed: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("got %d departments, want 1 after promotion", len(merged))
	}
	if merged[0].Synthetic() {
		t.Error("promoted unit must not be synthetic")
	}
	if merged[0].ID != promoted.ID {
		t.Errorf("merged id: got %q, want %q", merged[0].ID, promoted.ID)
	}
	if merged[0].Manager != u.ID {
		t.Errorf("manager: got %q, want %q", merged[0].Manager, u.ID)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Department{Name: "Cleanup"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, models.Department{
		Name:        "Cleanup & Color",
		Description: "merged unit",
		Manager:     "user-1",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Cleanup & Color" || got.Manager != "user-1" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Update(ctx, "missing", models.Department{Name: "X"}); err != departmentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := departmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Department{Name: "Key Animation"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByName(ctx, "key animation")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID: got %q, want %q", got.ID, created.ID)
	}
}
