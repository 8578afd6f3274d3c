package affiliation

import (
	"reflect"
	"testing"

	"github.com/toonworks/studiohub/internal/domain/models"
)

func TestJobName_DirectFieldWins(t *testing.T) {
	jobs := []models.Job{{ID: "artist", Name: "Artist"}}
	u := models.User{JobTitle: "Lead Animator", JobID: "artist"}
	if got := JobName(u, jobs); got != "Lead Animator" {
		t.Errorf("JobName = %q, want %q", got, "Lead Animator")
	}
}

func TestJobName_IDLookup(t *testing.T) {
	jobs := []models.Job{{ID: "artist", Name: "Artist"}}
	u := models.User{JobID: "artist"}
	if got := JobName(u, jobs); got != "Artist" {
		t.Errorf("JobName = %q, want %q", got, "Artist")
	}
}

func TestJobName_DanglingID(t *testing.T) {
	u := models.User{JobID: "nope"}
	if got := JobName(u, nil); got != "" {
		t.Errorf("JobName = %q, want unresolved", got)
	}
}

func TestJobName_IgnoresLegacyFreeText(t *testing.T) {
	// The legacy free-text job field is carried on old records but does
	// not participate in resolution.
	u := models.User{JobID: "nope", Job: "Inker"}
	if got := JobName(u, nil); got != "" {
		t.Errorf("JobName = %q, want unresolved", got)
	}
}

func TestJobName_Unresolved(t *testing.T) {
	if got := JobName(models.User{}, nil); got != "" {
		t.Errorf("JobName = %q, want unresolved", got)
	}
}

func TestDepartmentName_Precedence(t *testing.T) {
	departments := []models.Department{{ID: "d1", Name: "Key Animation"}}

	tests := []struct {
		name string
		u    models.User
		want string
	}{
		{"direct field wins over id and section", models.User{Department: "Cleanup", DepartmentID: "d1", Section: "Old"}, "Cleanup"},
		{"id lookup", models.User{DepartmentID: "d1", Section: "Old"}, "Key Animation"},
		{"dangling id falls to section", models.User{DepartmentID: "gone", Section: "Old"}, "Old"},
		{"section alone", models.User{Section: "Backgrounds"}, "Backgrounds"},
		{"nothing", models.User{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DepartmentName(tt.u, departments); got != tt.want {
				t.Errorf("DepartmentName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDepartmentName_EmptySnapshotFallsThrough(t *testing.T) {
	// Departments not yet loaded: the id tier matches nothing and the
	// chain continues to the legacy section field.
	u := models.User{DepartmentID: "d1", Section: "Trace & Paint"}
	if got := DepartmentName(u, nil); got != "Trace & Paint" {
		t.Errorf("DepartmentName = %q, want %q", got, "Trace & Paint")
	}
}

func TestRoleCandidates_Array(t *testing.T) {
	u := models.User{Roles: models.RoleList{Values: []string{" Artist - KA ", "", "ADMINISTRATOR"}}}
	want := []string{"artist - ka", "administrator"}
	if got := RoleCandidates(u, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCandidates = %v, want %v", got, want)
	}
}

func TestRoleCandidates_DelimitedString(t *testing.T) {
	u := models.User{Roles: models.RoleList{Raw: "Supervisor ; Admin"}}
	want := []string{"supervisor", "admin"}
	if got := RoleCandidates(u, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCandidates = %v, want %v", got, want)
	}
}

func TestRoleCandidates_RoleIDByStorageKey(t *testing.T) {
	roles := []models.Role{{ID: "r1", Name: "Checker - KA"}}
	u := models.User{RoleID: "r1"}
	want := []string{"checker - ka"}
	if got := RoleCandidates(u, roles); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCandidates = %v, want %v", got, want)
	}
}

func TestRoleCandidates_RoleIDByLegacyIDField(t *testing.T) {
	// Historical records may reference the role's own id field rather
	// than its storage key; the secondary lookup must find it.
	roles := []models.Role{{ID: "abc123", LegacyID: "r1", Name: "Final Checker - IB"}}
	u := models.User{RoleID: "r1"}
	want := []string{"final checker - ib"}
	if got := RoleCandidates(u, roles); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCandidates = %v, want %v", got, want)
	}
}

func TestRoleCandidates_StorageKeyBeatsLegacyID(t *testing.T) {
	roles := []models.Role{
		{ID: "other", LegacyID: "r1", Name: "Wrong"},
		{ID: "r1", Name: "Right"},
	}
	u := models.User{RoleID: "r1"}
	want := []string{"right"}
	if got := RoleCandidates(u, roles); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCandidates = %v, want %v", got, want)
	}
}

func TestRoleCandidates_JobTitleFallback(t *testing.T) {
	u := models.User{RoleID: "dangling", JobTitle: "Colorist"}
	want := []string{"colorist"}
	if got := RoleCandidates(u, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCandidates = %v, want %v", got, want)
	}
}

func TestRoleCandidates_Empty(t *testing.T) {
	if got := RoleCandidates(models.User{}, nil); len(got) != 0 {
		t.Errorf("RoleCandidates = %v, want empty", got)
	}
}

func TestRoleName_JoinsForDisplay(t *testing.T) {
	u := models.User{Roles: models.RoleList{Raw: "Artist - KA, Administrator"}}
	if got := RoleName(u, nil); got != "artist - ka, administrator" {
		t.Errorf("RoleName = %q", got)
	}
}
