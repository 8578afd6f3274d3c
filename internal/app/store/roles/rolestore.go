package rolestore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
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
	return &Store{c: db.Collection("roles")}
}

var (
	// ErrNotFound is returned when no role matches the given id.
	ErrNotFound = errors.New("role not found")
	// ErrDuplicateName is returned when creating or renaming a role to a
	// name whose normalized form already exists. Uniqueness is enforced
	// here so duplicates never accumulate.
	ErrDuplicateName = errors.New("a role with this name already exists")
)

// List returns the stored roles only.
func (s *Store) List(ctx context.Context) ([]models.Role, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Role
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWithTemplates returns the stored roles merged with the predefined
// templates, keyed by normalized name, stored entries first. A stored role
// shadows the template of the same name.
func (s *Store) ListWithTemplates(ctx context.Context) ([]models.Role, error) {
	stored, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return MergeTemplates(stored), nil
}

// GetByID loads a role, trying the document key first and then the legacy
// id field. Historical user records reference roles through either scheme.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Role, error) {
	var r models.Role
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		err = s.c.FindOne(ctx, bson.M{"id": id}).Decode(&r)
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// GetByName loads a role by case-insensitive name.
func (s *Store) GetByName(ctx context.Context, name string) (*models.Role, error) {
	var r models.Role
	if err := s.c.FindOne(ctx, bson.M{"name_key": normalize.Key(name)}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// Create inserts a role after normalizing its name and permission keys.
func (s *Store) Create(ctx context.Context, r models.Role) (models.Role, error) {
	r.Name = normalize.Name(r.Name)
	r.NameKey = normalize.Key(r.Name)
	r.Permissions = normalizePermissions(r.Permissions)
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if _, err := s.GetByName(ctx, r.Name); err == nil {
		return models.Role{}, ErrDuplicateName
	} else if err != ErrNotFound {
		return models.Role{}, err
	}

	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Role{}, ErrDuplicateName
		}
		return models.Role{}, err
	}
	return r, nil
}

// Update applies name, description, and permission changes. Renaming to an
// existing role's name is rejected.
func (s *Store) Update(ctx context.Context, id string, r models.Role) error {
	name := normalize.Name(r.Name)
	nameKey := normalize.Key(name)

	n, err := s.c.CountDocuments(ctx, bson.M{
		"name_key": nameKey,
		"_id":      bson.M{"$ne": id},
	})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateName
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":        name,
		"name_key":    nameKey,
		"description": r.Description,
		"permissions": normalizePermissions(r.Permissions),
		"updated_at":  time.Now(),
	}})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateName
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a stored role.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func normalizePermissions(perms []string) []string {
	out := make([]string, 0, len(perms))
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		key := normalize.PermissionKey(p)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
