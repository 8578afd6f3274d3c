package chatstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toonworks/studiohub/internal/app/system/htmlsanitize"
	"github.com/toonworks/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("chat_messages")}
}

// ErrEmptyBody is returned when a message has no content left after
// sanitization.
var ErrEmptyBody = errors.New("message body is empty")

// batchSize bounds how many ids a single DeleteMany carries.
const batchSize = 50

// Insert stores a message. The body is stripped to plain text; a message
// that is empty after stripping is rejected.
func (s *Store) Insert(ctx context.Context, m models.ChatMessage) (models.ChatMessage, error) {
	m.Body = strings.TrimSpace(htmlsanitize.StripTags(m.Body))
	if m.Body == "" {
		return models.ChatMessage{}, ErrEmptyBody
	}
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.ChatMessage{}, err
	}
	return m, nil
}

// ListByDepartment returns the most recent messages for a department in
// chronological order. limit <= 0 means no limit.
func (s *Store) ListByDepartment(ctx context.Context, departmentID string, limit int64) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{"department_id": departmentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.ChatMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	// Reverse into chronological order for rendering.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Watch opens a change stream of message inserts for one department and
// sends each new message on the returned channel. The stream is keyed to
// ctx: when the caller's request ends, the stream closes and the channel
// is drained and closed. Requires a replica set.
func (s *Store) Watch(ctx context.Context, departmentID string) (<-chan models.ChatMessage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType":              "insert",
			"fullDocument.department_id": departmentID,
		}}},
	}
	stream, err := s.c.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	out := make(chan models.ChatMessage)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			var ev struct {
				FullDocument models.ChatMessage `bson:"fullDocument"`
			}
			if err := stream.Decode(&ev); err != nil {
				continue
			}
			select {
			case out <- ev.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// BatchDelete removes the given messages in chunks, so a large purge never
// sends one unbounded delete filter.
func (s *Store) BatchDelete(ctx context.Context, ids []string) (int64, error) {
	var total int64
	for len(ids) > 0 {
		n := batchSize
		if len(ids) < n {
			n = len(ids)
		}
		chunk := ids[:n]
		ids = ids[n:]

		res, err := s.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": chunk}})
		if err != nil {
			return total, err
		}
		total += res.DeletedCount
	}
	return total, nil
}

// PurgeOlderThan deletes messages created before the cutoff, returning the
// number removed. Runs as a periodic maintenance task.
func (s *Store) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"created_at": bson.M{"$lt": cutoff}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return 0, err
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return 0, err
	}
	return s.BatchDelete(ctx, ids)
}
