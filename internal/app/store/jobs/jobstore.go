package jobstore

import (
	"context"
	"errors"
	"time"

	"github.com/toonworks/studiohub/internal/app/system/affiliation"
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
	return &Store{c: db.Collection("jobs")}
}

var (
	// ErrNotFound is returned when no job matches the given id.
	ErrNotFound = errors.New("job not found")
	// ErrDuplicateID is returned when creating a job whose id already exists.
	ErrDuplicateID = errors.New("a job with this id already exists")
)

// List returns the stored jobs only.
func (s *Store) List(ctx context.Context) ([]models.Job, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWithDefaults returns the stored jobs merged with the built-in
// defaults. Stored entries win on name collisions, so renaming a default
// through the console sticks.
func (s *Store) ListWithDefaults(ctx context.Context) ([]models.Job, error) {
	stored, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return affiliation.MergeJobs(stored), nil
}

// GetByID loads a job by document key.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Create inserts a job. When id is empty the normalized name is used as
// the key, matching how the default jobs are keyed.
func (s *Store) Create(ctx context.Context, j models.Job) (models.Job, error) {
	j.Name = normalize.Name(j.Name)
	if j.ID == "" {
		j.ID = normalize.PermissionKey(j.Name)
	}

	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, j); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Job{}, ErrDuplicateID
		}
		return models.Job{}, err
	}
	return j, nil
}

// Update renames a job. Creating the document if absent lets a default
// job be renamed without a prior explicit create.
func (s *Store) Update(ctx context.Context, id, name string) error {
	now := time.Now()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":         bson.M{"name": normalize.Name(name), "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Delete removes a stored job. Default jobs reappear in merged listings
// after deletion since they are not stored.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
