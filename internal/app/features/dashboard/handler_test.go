package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/toonworks/studiohub/internal/app/features/dashboard"
	"github.com/toonworks/studiohub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *dashboard.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return dashboard.NewHandler(db, zap.NewNop())
}

func TestServeDashboard_ArtistRedirects(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/dashboard", testutil.ArtistUser())
	rec := httptest.NewRecorder()

	handler.ServeDashboard(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/artist" {
		t.Errorf("redirect: got %q, want /dashboard/artist", loc)
	}
}

func TestServeDashboard_AdminRedirects(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/dashboard", testutil.AdminUser())
	rec := httptest.NewRecorder()

	handler.ServeDashboard(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/dashboard/admin" {
		t.Errorf("redirect: got %q, want /dashboard/admin", loc)
	}
}

func TestServeDashboard_NoSessionRedirectsHome(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeDashboard(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect: got %q, want /", loc)
	}
}

func TestServeDashboard_OtherRendersGeneral(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/dashboard", testutil.OtherUser())
	rec := httptest.NewRecorder()

	// The general view renders a template, which may panic without
	// initialized templates.
	func() {
		defer func() {
			_ = recover()
		}()
		handler.ServeDashboard(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Errorf("unexpected redirect to %q", rec.Header().Get("Location"))
	}
}
