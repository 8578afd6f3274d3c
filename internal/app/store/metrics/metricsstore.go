package metricsstore

import (
	"context"
	"time"

	"github.com/toonworks/studiohub/internal/app/system/affiliation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of totals used by dashboards.
type Counts struct {
	Users       int64
	Online      int64
	Departments int64
	Jobs        int64
	Roles       int64
	Teams       int64
}

// FetchDashboardCounts returns the high-level counts used by dashboards.
// Intentionally tolerant: on error it returns 0 for that counter.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts

	// users
	if n, err := db.Collection("users").CountDocuments(ctx, bson.M{}); err == nil {
		out.Users = n
	}

	// online users, by the shared presence window
	cutoff := time.Now().Add(-affiliation.OnlineWindow)
	if n, err := db.Collection("users").CountDocuments(ctx, bson.M{
		"last_active": bson.M{"$gte": cutoff},
	}); err == nil {
		out.Online = n
	}

	// departments (stored units only; synthetic units come from user records)
	if n, err := db.Collection("sections").CountDocuments(ctx, bson.M{}); err == nil {
		out.Departments = n
	}

	// jobs
	if n, err := db.Collection("jobs").CountDocuments(ctx, bson.M{}); err == nil {
		out.Jobs = n
	}

	// roles
	if n, err := db.Collection("roles").CountDocuments(ctx, bson.M{}); err == nil {
		out.Roles = n
	}

	// teams
	if n, err := db.Collection("teams").CountDocuments(ctx, bson.M{}); err == nil {
		out.Teams = n
	}

	return out
}
