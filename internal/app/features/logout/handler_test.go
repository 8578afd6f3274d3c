package logout_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/toonworks/studiohub/internal/app/features/logout"
	"github.com/toonworks/studiohub/internal/app/system/auth"
	"go.uber.org/zap"
)

func TestServeLogout_RedirectsHome(t *testing.T) {
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager(strings.Repeat("k", 32), "studiohub_test", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	handler := logout.NewHandler(sessionMgr, logger)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect: got %q, want /", loc)
	}

	// The deletion cookie must expire the session immediately.
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "studiohub_test" && c.MaxAge < 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected an expired session cookie")
	}
}
