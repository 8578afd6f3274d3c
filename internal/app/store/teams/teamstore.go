package teamstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/toonworks/studiohub/internal/app/system/normalize"
	"github.com/toonworks/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teams")}
}

// ErrNotFound is returned when no team matches the given id.
var ErrNotFound = errors.New("team not found")

// List returns all teams, optionally filtered by type (a department id).
func (s *Store) List(ctx context.Context, teamType string) ([]models.Team, error) {
	filter := bson.M{}
	if teamType != "" {
		filter["type"] = teamType
	}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Team
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads a team by document key.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var t models.Team
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a team with a server-assigned id.
func (s *Store) Create(ctx context.Context, t models.Team) (models.Team, error) {
	t.ID = uuid.NewString()
	t.Name = normalize.Name(t.Name)

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Team{}, err
	}
	return t, nil
}

// Update replaces the editable team fields.
func (s *Store) Update(ctx context.Context, id string, t models.Team) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":           normalize.Name(t.Name),
		"description":    t.Description,
		"type":           t.Type,
		"checker":        t.Checker,
		"backup_checker": t.BackupChecker,
		"members":        t.Members,
		"updated_at":     time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a team.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Stats summarizes the team listing for the console header cards.
type Stats struct {
	Total       int
	Active      int // teams with a checker assigned
	UniqueTypes int
}

// ComputeStats derives listing stats from an already-loaded team slice.
func ComputeStats(teams []models.Team) Stats {
	st := Stats{Total: len(teams)}
	types := make(map[string]struct{})
	for _, t := range teams {
		if t.Checker != "" {
			st.Active++
		}
		if t.Type != "" {
			types[t.Type] = struct{}{}
		}
	}
	st.UniqueTypes = len(types)
	return st
}
