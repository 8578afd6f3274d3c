package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when creating a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrNotFound is returned when no user matches the given id.
	ErrNotFound = errors.New("user not found")
)

// GetByID loads a user by document key (the identity UID).
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Some records predate
// the identity-UID keying and are only reachable this way.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users sorted by folded full name.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "full_name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search returns users whose folded name or email starts with q.
// An empty q behaves like List.
func (s *Store) Search(ctx context.Context, q string) ([]models.User, error) {
	if q == "" {
		return s.List(ctx)
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"full_name_ci": bson.M{"$regex": "^" + text.Fold(q), "$options": "i"}},
		bson.M{"email": bson.M{"$regex": "^" + q, "$options": "i"}},
	}}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "full_name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new user keyed by the given identity UID, after
// normalizing fields. The caller is responsible for creating the identity
// account first; the UID links the two records.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.FirstName = normalize.Name(u.FirstName)
	u.LastName = normalize.Name(u.LastName)
	u.FullNameCI = text.Fold(u.FullName())
	u.Email = normalize.Email(u.Email)
	u.Status = normalize.Status(u.Status)

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Update holds the user fields editable through the admin console. The
// email is updated separately because it must go through the identity
// provider first.
type Update struct {
	FirstName    string
	LastName     string
	EmployeeID   string
	JobID        string
	JobTitle     string
	DepartmentID string
	Department   string
	RoleID       string
	Role         string
	Status       string
}

// UpdateProfile applies an Update to the user document.
func (s *Store) UpdateProfile(ctx context.Context, id string, upd Update) error {
	first := normalize.Name(upd.FirstName)
	last := normalize.Name(upd.LastName)
	set := bson.M{
		"first_name":    first,
		"last_name":     last,
		"full_name_ci":  text.Fold(models.User{FirstName: first, LastName: last}.FullName()),
		"employee_id":   upd.EmployeeID,
		"job_id":        upd.JobID,
		"job_title":     upd.JobTitle,
		"department_id": upd.DepartmentID,
		"department":    upd.Department,
		"role_id":       upd.RoleID,
		"role":          upd.Role,
		"status":        normalize.Status(upd.Status),
		"updated_at":    time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateEmail sets the directory email. The directory is written before
// the identity provider; an identity failure afterwards leaves the two
// records out of sync, which the caller must surface.
func (s *Store) UpdateEmail(ctx context.Context, id, email string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"email":      normalize.Email(email),
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastActive records activity for the online indicator.
func (s *Store) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_active": at}})
	return err
}

// Delete removes a user document. Returns the number deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EmailExistsForOther checks if an email already belongs to a user other
// than the given ID.
func (s *Store) EmailExistsForOther(ctx context.Context, email, excludeID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"email": normalize.Email(email),
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}
