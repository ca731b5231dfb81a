package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary conflict-scan pattern.
		{
			Keys:    bson.D{{Key: "courtId", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("court_status_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "resources.coachId", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("coach_status_start_idx"),
		},
		// Day-listing pattern.
		{
			Keys:    bson.D{{Key: "startTime", Value: 1}},
			Options: options.Index().SetName("start_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
