package metricsstore_test

import (
	"testing"
	"time"

	metricsstore "github.com/toonworks/studiohub/internal/app/store/metrics"
	"github.com/toonworks/studiohub/internal/testutil"
)

func TestFetchDashboardCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, db)

	if counts.Users != 0 {
		t.Errorf("Users: got %d, want 0", counts.Users)
	}
	if counts.Teams != 0 {
		t.Errorf("Teams: got %d, want 0", counts.Teams)
	}
}

func TestFetchDashboardCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Mina", "Park", "mina@toonworks.example", "Key Animator", "Key Animation")
	fixtures.CreateUser(ctx, "Joon", "Lee", "joon@toonworks.example", "Checker", "Key Animation")
	fixtures.CreateDepartment(ctx, "dept-ka", "Key Animation", "Mina Park")
	fixtures.CreateJob(ctx, "key-animator", "Key Animator")
	fixtures.CreateRole(ctx, "role-1", "KA - ARTIST", "view_tasks")
	fixtures.CreateTeam(ctx, "Cleanup A", "cleanup", "mina", "joon")

	counts := metricsstore.FetchDashboardCounts(ctx, db)

	if counts.Users != 2 {
		t.Errorf("Users: got %d, want 2", counts.Users)
	}
	if counts.Departments != 1 {
		t.Errorf("Departments: got %d, want 1", counts.Departments)
	}
	if counts.Jobs != 1 {
		t.Errorf("Jobs: got %d, want 1", counts.Jobs)
	}
	if counts.Roles != 1 {
		t.Errorf("Roles: got %d, want 1", counts.Roles)
	}
	if counts.Teams != 1 {
		t.Errorf("Teams: got %d, want 1", counts.Teams)
	}
}

func TestFetchDashboardCounts_OnlineWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Mina", "Park", "mina@toonworks.example", "Key Animator", "Key Animation")
	fixtures.CreateUser(ctx, "Joon", "Lee", "joon@toonworks.example", "Checker", "Key Animation")

	// Only Mina has been active recently.
	_, err := db.Collection("users").UpdateOne(ctx,
		map[string]any{"_id": u.ID},
		map[string]any{"$set": map[string]any{"last_active": time.Now()}},
	)
	if err != nil {
		t.Fatalf("set last_active failed: %v", err)
	}

	counts := metricsstore.FetchDashboardCounts(ctx, db)
	if counts.Online != 1 {
		t.Errorf("Online: got %d, want 1", counts.Online)
	}
}
