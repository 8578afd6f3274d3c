package departmentstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads and writes organizational units. The collection is named
// "sections" for historical reasons.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sections")}
}

var (
	// ErrNotFound is returned when no department matches the given id.
	ErrNotFound = errors.New("department not found")
	// ErrDuplicateName is returned when creating a department whose
	// normalized name already exists.
	ErrDuplicateName = errors.New("a department with this name already exists")
)

// List returns the stored departments only. Callers that need the full
// picture, including units that exist only as free text on user records,
// should use ListMerged.
func (s *Store) List(ctx context.Context) ([]models.Department, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Department
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMerged returns stored departments plus synthetic units for every
// department name present only on the given user records.
func (s *Store) ListMerged(ctx context.Context, users []models.User) ([]models.Department, error) {
	stored, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return affiliation.MergeDepartments(stored, users), nil
}

// GetByID loads a department by document key.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Department, error) {
	var d models.Department
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByName loads a department by case-insensitive name.
func (s *Store) GetByName(ctx context.Context, name string) (*models.Department, error) {
	var d models.Department
	err := s.c.FindOne(ctx, bson.M{"name_key": normalize.Key(name)}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a department. This is also how a synthetic unit becomes a
// stored record ("promotion"): creating a department with the synthetic
// unit's name gives it a real key, a manager slot, and timestamps.
func (s *Store) Create(ctx context.Context, d models.Department) (models.Department, error) {
	d.Name = normalize.Name(d.Name)
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	if _, err := s.GetByName(ctx, d.Name); err == nil {
		return models.Department{}, ErrDuplicateName
	} else if err != ErrNotFound {
		return models.Department{}, err
	}

	d.NameKey = normalize.Key(d.Name)

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Department{}, ErrDuplicateName
		}
		return models.Department{}, err
	}
	return d, nil
}

// Update applies name, description, and manager changes.
func (s *Store) Update(ctx context.Context, id string, d models.Department) error {
	name := normalize.Name(d.Name)
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":        name,
		"name_key":    normalize.Key(name),
		"description": d.Description,
		"manager":     d.Manager,
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

// Delete removes a stored department. Synthetic units cannot be deleted;
// they vanish only when no user record references the name.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
