// internal/app/identity/provider.go
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Provider stores accounts in the identity_accounts collection, keyed by
// UID, with bcrypt password hashes.
type Provider struct {
	c     *mongo.Collection
	admin *AdminCredential
	log   *zap.Logger
}

// New builds a Provider. admin may be nil, in which case the privileged
// email-update path reports ErrNotConfigured.
func New(db *mongo.Database, admin *AdminCredential, logger *zap.Logger) *Provider {
	if admin == nil {
		logger.Info("privileged identity path not configured; email updates limited to self-service")
	}
	return &Provider{c: db.Collection("identity_accounts"), admin: admin, log: logger}
}

type accountDoc struct {
	UID          string    `bson:"_id"`
	Email        string    `bson:"email"`
	EmailKey     string    `bson:"email_key"`
	PasswordHash string    `bson:"password_hash"`
	DisplayName  string    `bson:"display_name,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// SignIn verifies the credentials and returns the account.
func (p *Provider) SignIn(ctx context.Context, email, password string) (Account, error) {
	var doc accountDoc
	err := p.c.FindOne(ctx, bson.M{"email_key": normalize.Email(email)}).Decode(&doc)
	switch {
	case err == mongo.ErrNoDocuments:
		return Account{}, ErrUserNotFound
	case err != nil:
		return Account{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return Account{UID: doc.UID, Email: doc.Email}, nil
}

// CreateAccount validates, then creates an account with a server-assigned
// UID. Validation failures happen before any store I/O.
func (p *Provider) CreateAccount(ctx context.Context, email, password string) (Account, error) {
	email = normalize.Email(email)
	if err := ValidateEmail(email); err != nil {
		return Account{}, err
	}
	if err := ValidatePassword(password); err != nil {
		return Account{}, err
	}

	n, err := p.c.CountDocuments(ctx, bson.M{"email_key": email})
	if err != nil {
		return Account{}, err
	}
	if n > 0 {
		return Account{}, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	now := time.Now()
	doc := accountDoc{
		UID:          uuid.NewString(),
		Email:        email,
		EmailKey:     email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := p.c.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Account{}, ErrEmailInUse
		}
		return Account{}, err
	}
	return Account{UID: doc.UID, Email: doc.Email}, nil
}

// UpdateDisplayName sets the account's display name.
func (p *Provider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	res, err := p.c.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{
		"display_name": normalize.Name(name),
		"updated_at":   time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AdminUpdateEmail changes any account's email through the privileged
// path. Returns ErrNotConfigured when no service credential was loaded.
func (p *Provider) AdminUpdateEmail(ctx context.Context, uid, newEmail string) error {
	if p.admin == nil {
		return ErrNotConfigured
	}
	return p.setEmail(ctx, uid, newEmail)
}

// SelfUpdateEmail changes an account's email through the self-service
// path, which only works on the acting session's own account.
func (p *Provider) SelfUpdateEmail(ctx context.Context, actorUID, uid, newEmail string) error {
	if actorUID == "" || actorUID != uid {
		return ErrNotAuthorized
	}
	return p.setEmail(ctx, uid, newEmail)
}

// UpdateEmail runs the privileged-first chain: admin path, then
// self-service on authorization failure. The returned error is the last
// path's error, so callers can surface a distinct partial-failure state
// when the directory record was already updated.
func (p *Provider) UpdateEmail(ctx context.Context, actorUID, uid, newEmail string) error {
	err := p.AdminUpdateEmail(ctx, uid, newEmail)
	if errors.Is(err, ErrNotConfigured) {
		return p.SelfUpdateEmail(ctx, actorUID, uid, newEmail)
	}
	return err
}

func (p *Provider) setEmail(ctx context.Context, uid, newEmail string) error {
	newEmail = normalize.Email(newEmail)
	if err := ValidateEmail(newEmail); err != nil {
		return err
	}

	n, err := p.c.CountDocuments(ctx, bson.M{
		"email_key": newEmail,
		"_id":       bson.M{"$ne": uid},
	})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailInUse
	}

	res, err := p.c.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{
		"email":      newEmail,
		"email_key":  newEmail,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
