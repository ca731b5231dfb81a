package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"courtbook/models"
	"courtbook/utils"
)

// CreateBooking validates the request, verifies all three resource
// constraints, computes the price breakdown and persists the booking.
// The booking document is written only after every check and the
// calculation succeed; there are no partial writes.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidInterval
	}

	court, err := s.Courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("court lookup failed: %w", err)
	}

	// Administrative availability is a precondition, checked before the
	// time-based conflict scan.
	if req.CoachID != "" {
		coach, err := s.Coaches.GetByID(ctx, req.CoachID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrCoachUnavailable
			}
			return nil, fmt.Errorf("coach lookup failed: %w", err)
		}
		if !coach.IsAvailable {
			return nil, ErrCoachUnavailable
		}
	}

	avail, err := s.checkAvailability(ctx, req.CourtID, req.CoachID, req.StartTime, req.EndTime, req.RacketCount, req.ShoeCount)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !avail.CourtFree {
		return nil, newCourtConflict()
	}
	if !avail.CoachFree {
		return nil, newCoachConflict()
	}
	if !avail.EquipmentFree {
		return nil, newEquipmentConflict()
	}

	rules, err := s.Rules.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	breakdown := CalculatePrice(court.BasePrice, rules, req.StartTime, s.Location, PriceOptions{
		CourtType:   court.Type,
		RacketCount: req.RacketCount,
		ShoeCount:   req.ShoeCount,
	})

	booking := &models.Booking{
		ID:        uuid.New().String(),
		UserName:  req.UserName,
		CourtID:   req.CourtID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Resources: models.BookingResources{
			RacketCount: req.RacketCount,
			ShoeCount:   req.ShoeCount,
			CoachID:     req.CoachID,
		},
		Status:           models.StatusConfirmed,
		PricingBreakdown: breakdown,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("courtID", booking.CourtID),
		zap.Float64("total", breakdown.Total))
	return booking, nil
}

// PreviewPrice computes a breakdown without touching availability or
// persisting anything.
func (s *DefaultBookingService) PreviewPrice(ctx context.Context, req PreviewRequest) (*models.PriceBreakdown, error) {
	court, err := s.Courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("court lookup failed: %w", err)
	}

	rules, err := s.Rules.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	breakdown := CalculatePrice(court.BasePrice, rules, req.StartTime, s.Location, PriceOptions{
		CourtType:   court.Type,
		RacketCount: req.RacketCount,
		ShoeCount:   req.ShoeCount,
	})
	return &breakdown, nil
}

// ListBookings returns bookings whose start time falls on the given
// calendar day (facility time zone), with court and coach populated.
// An empty date lists everything.
func (s *DefaultBookingService) ListBookings(ctx context.Context, date string) ([]models.BookingDetail, error) {
	var bookings []models.Booking
	var err error

	if date == "" {
		bookings, err = s.Bookings.ListAll(ctx)
	} else {
		var day time.Time
		day, err = time.ParseInLocation("2006-01-02", date, s.Location)
		if err != nil {
			return nil, ErrInvalidDate
		}
		bookings, err = s.Bookings.ListByRange(ctx, day, day.AddDate(0, 0, 1))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return s.populate(ctx, bookings)
}

// populate attaches court and coach documents, deduplicating lookups
// across the result set.
func (s *DefaultBookingService) populate(ctx context.Context, bookings []models.Booking) ([]models.BookingDetail, error) {
	courts := make(map[string]*models.Court)
	coaches := make(map[string]*models.Coach)

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := models.BookingDetail{Booking: b}

		if court, ok := courts[b.CourtID]; ok {
			detail.Court = court
		} else {
			court, err := s.Courts.GetByID(ctx, b.CourtID)
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fmt.Errorf("court lookup failed: %w", err)
			}
			courts[b.CourtID] = court
			detail.Court = court
		}

		if b.Resources.CoachID != "" {
			if coach, ok := coaches[b.Resources.CoachID]; ok {
				detail.Coach = coach
			} else {
				coach, err := s.Coaches.GetByID(ctx, b.Resources.CoachID)
				if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
					return nil, fmt.Errorf("coach lookup failed: %w", err)
				}
				coaches[b.Resources.CoachID] = coach
				detail.Coach = coach
			}
		}

		details = append(details, detail)
	}
	return details, nil
}
