package chat_test

import (
	"testing"

	"github.com/toonworks/studiohub/internal/app/features/chat"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	chatstore "github.com/toonworks/studiohub/internal/app/store/chat"
	"github.com/toonworks/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*chat.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	return chat.NewHandler(db, logger, errLog), db
}

func TestHandlePost(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sender := testutil.ArtistUser()

	req := testutil.NewFormRequest("/chat/dept-ka/messages", map[string]string{
		"body": "Scene 12 is ready for checking",
	}, sender)
	req = testutil.WithChiURLParam(req, "id", "dept-ka")
	rec := testutil.NewRecorder()

	h.HandlePost(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/chat/dept-ka")

	msgs, err := chatstore.New(db).ListByDepartment(ctx, "dept-ka", 0)
	if err != nil {
		t.Fatalf("ListByDepartment failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("messages: got %d, want 1", len(msgs))
	}
	if msgs[0].SenderID != sender.ID {
		t.Errorf("sender: got %q, want %q", msgs[0].SenderID, sender.ID)
	}
	if msgs[0].SenderName != sender.Name {
		t.Errorf("sender name: got %q, want %q", msgs[0].SenderName, sender.Name)
	}
	if msgs[0].Body != "Scene 12 is ready for checking" {
		t.Errorf("body: got %q", msgs[0].Body)
	}
}

func TestHandlePost_StripsMarkup(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/chat/dept-ka/messages", map[string]string{
		"body": "<script>alert(1)</script>ready",
	}, testutil.ArtistUser())
	req = testutil.WithChiURLParam(req, "id", "dept-ka")
	rec := testutil.NewRecorder()

	h.HandlePost(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/chat/dept-ka")

	msgs, err := chatstore.New(db).ListByDepartment(ctx, "dept-ka", 0)
	if err != nil {
		t.Fatalf("ListByDepartment failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("messages: got %d, want 1", len(msgs))
	}
	if msgs[0].Body != "ready" {
		t.Errorf("body: got %q, want ready", msgs[0].Body)
	}
}

func TestHandlePost_EmptyAfterSanitize(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/chat/dept-ka/messages", map[string]string{
		"body": "  <b></b>  ",
	}, testutil.ArtistUser())
	req = testutil.WithChiURLParam(req, "id", "dept-ka")
	rec := testutil.NewRecorder()

	// An empty message is dropped without an error page.
	h.HandlePost(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/chat/dept-ka")

	msgs, err := chatstore.New(db).ListByDepartment(ctx, "dept-ka", 0)
	if err != nil {
		t.Fatalf("ListByDepartment failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("messages: got %d, want 0", len(msgs))
	}
}
