package normalize

import (
	"reflect"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Animation", "animation"},
		{"  Cleanup  ", "cleanup"},
		{"", ""},
		{"   ", ""},
		{"CHECKER - KA", "checker - ka"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Key(tt.input)
			if got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitRoles(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Supervisor ; Admin", []string{"supervisor", "admin"}},
		{"Artist - KA, Administrator", []string{"artist - ka", "administrator"}},
		{"a|b/c;d,e", []string{"a", "b", "c", "d", "e"}},
		{"  ,, ;", nil},
		{"", nil},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SplitRoles(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRoles(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPermissionKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Manage Users", "manage_users"},
		{"Attendance Log (Edit)", "attendance_log_edit"},
		{"Downtime Grant (Per department)", "downtime_grant_per_department"},
		{"  Team   Chat  ", "team_chat"},
		{"COE Requests", "coe_requests"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := PermissionKey(tt.input)
			if got != tt.want {
				t.Errorf("PermissionKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
