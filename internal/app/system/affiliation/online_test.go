package affiliation

import (
	"testing"
	"time"

	"github.com/toonworks/studiohub/internal/domain/models"
)

func TestOnline_Boundary(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want bool
	}{
		{"4m59s ago is online", 4*time.Minute + 59*time.Second, true},
		{"exactly 5m ago is online", 5 * time.Minute, true},
		{"5m01s ago is offline", 5*time.Minute + time.Second, false},
		{"just now", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Online(now.Add(-tt.ago), now); got != tt.want {
				t.Errorf("Online = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOnline_ZeroTimeOffline(t *testing.T) {
	if Online(time.Time{}, time.Now()) {
		t.Error("zero lastActive must be offline")
	}
}

func TestCountOnline(t *testing.T) {
	now := time.Now()
	users := []models.User{
		{ID: "u1", LastActive: now.Add(-time.Minute)},
		{ID: "u2", LastActive: now.Add(-time.Hour)},
		{ID: "u3"},
	}
	if got := CountOnline(users, now); got != 1 {
		t.Errorf("CountOnline = %d, want 1", got)
	}
}
