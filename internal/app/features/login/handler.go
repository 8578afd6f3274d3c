// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	uierrors "github.com/toonworks/studiohub/internal/app/features/errors"
	"github.com/toonworks/studiohub/internal/app/identity"
	rolestore "github.com/toonworks/studiohub/internal/app/store/roles"
	userstore "github.com/toonworks/studiohub/internal/app/store/users"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/auth"
	"github.com/toonworks/studiohub/internal/app/system/timeouts"
	"github.com/toonworks/studiohub/internal/app/system/viewdata"
	"github.com/toonworks/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	Identity   *identity.Provider
	Users      *userstore.Store
	Roles      *rolestore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger, errLog *uierrors.ErrorLogger, sessionMgr *auth.SessionManager, provider *identity.Provider) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		SessionMgr: sessionMgr,
		Identity:   provider,
		Users:      userstore.New(db),
		Roles:      rolestore.New(db),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	account, err := h.Identity.SignIn(ctx, email, password)
	switch {
	case errors.Is(err, identity.ErrUserNotFound), errors.Is(err, identity.ErrInvalidCredentials):
		// One message for both, so the form doesn't confirm which emails exist.
		h.renderFormWithError(w, r, "Invalid email or password.", email, returnURL)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "identity sign-in failed", err, "Unable to sign in right now. Please try again.", "/login")
		return
	}

	user, err := h.lookupUser(ctx, account)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			h.Log.Warn("no staff record for authenticated account",
				zap.String("uid", account.UID),
				zap.String("email", account.Email))
			h.renderFormWithError(w, r, "Your account has no staff record. Contact an administrator.", email, returnURL)
			return
		}
		h.ErrLog.LogServerError(w, r, "load user failed during login", err, "A database error occurred.", "/login")
		return
	}

	if err := h.Users.TouchLastActive(ctx, user.ID, time.Now()); err != nil {
		// Presence is best effort; a failed touch must not block login.
		h.Log.Warn("touch last_active failed", zap.Error(err), zap.String("user_id", user.ID))
	}

	category := h.classify(ctx, user)

	sessionUser := &auth.SessionUser{
		ID:       user.ID,
		Name:     user.FullName(),
		Email:    user.Email,
		Category: string(category),
	}
	if err := h.SessionMgr.SignIn(w, r, sessionUser); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", user.ID))
		h.renderFormWithError(w, r, "Unable to create session. Please try again.", email, returnURL)
		return
	}

	dest := urlutil.SafeReturn(returnURL, "", affiliation.DashboardPath(category))
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// lookupUser finds the staff record for an authenticated account, by the
// account UID first, then by email for records created before accounts
// were keyed to the identity provider.
func (h *Handler) lookupUser(ctx context.Context, account identity.Account) (*models.User, error) {
	user, err := h.Users.GetByID(ctx, account.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userstore.ErrNotFound) {
		return nil, err
	}
	return h.Users.GetByEmail(ctx, account.Email)
}

// classify resolves the user's role candidates against the stored and
// template roles and collapses them to a routing category. A role load
// failure degrades to the default category rather than failing login.
func (h *Handler) classify(ctx context.Context, user *models.User) affiliation.Category {
	roles, err := h.Roles.ListWithTemplates(ctx)
	if err != nil {
		h.Log.Warn("load roles failed during login", zap.Error(err), zap.String("user_id", user.ID))
		roles = nil
	}
	return affiliation.Classify(affiliation.RoleCandidates(*user, roles))
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, returnURL string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: returnURL,
	})
}
