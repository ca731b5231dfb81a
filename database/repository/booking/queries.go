package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

// overlapClauses builds the interval-overlap filter for [start, end).
// Three clauses, matching the booking engine's overlap policy exactly:
// new start inside existing, new end inside existing, or new interval
// containing the existing one. Do not collapse to the minimal two-sided
// test; boundary-touch semantics differ.
func overlapClauses(start, end time.Time) bson.A {
	return bson.A{
		bson.M{"startTime": bson.M{"$lt": end, "$gte": start}},
		bson.M{"endTime": bson.M{"$gt": start, "$lte": end}},
		bson.M{
			"startTime": bson.M{"$lte": start},
			"endTime":   bson.M{"$gte": end},
		},
	}
}

func (r *mongoBookingRepo) hasConflict(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.coll.FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("conflict lookup failed: %w", err)
}

func (r *mongoBookingRepo) HasCourtConflict(ctx context.Context, courtID string, start, end time.Time) (bool, error) {
	return r.hasConflict(ctx, bson.M{
		"courtId": courtID,
		"status":  models.StatusConfirmed,
		"$or":     overlapClauses(start, end),
	})
}

func (r *mongoBookingRepo) HasCoachConflict(ctx context.Context, coachID string, start, end time.Time) (bool, error) {
	return r.hasConflict(ctx, bson.M{
		"resources.coachId": coachID,
		"status":            models.StatusConfirmed,
		"$or":               overlapClauses(start, end),
	})
}

func (r *mongoBookingRepo) ListConfirmedOverlapping(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.StatusConfirmed,
		"$or":    overlapClauses(start, end),
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
