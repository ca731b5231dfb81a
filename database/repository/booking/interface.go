package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	HasCourtConflict(ctx context.Context, courtID string, start, end time.Time) (bool, error)
	HasCoachConflict(ctx context.Context, coachID string, start, end time.Time) (bool, error)
	ListConfirmedOverlapping(ctx context.Context, start, end time.Time) ([]models.Booking, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
