package booking

import (
	"context"
	"time"

	bookingRepo "courtbook/database/repository/booking"
	coachRepo "courtbook/database/repository/coach"
	courtRepo "courtbook/database/repository/court"
	equipmentRepo "courtbook/database/repository/equipment"
	"courtbook/models"
)

// CreateBookingRequest carries a reservation request into the service.
type CreateBookingRequest struct {
	UserName    string
	CourtID     string
	StartTime   time.Time
	EndTime     time.Time
	RacketCount int
	ShoeCount   int
	CoachID     string
}

// PreviewRequest carries a price-preview request. No availability check
// and nothing is persisted.
type PreviewRequest struct {
	CourtID     string
	StartTime   time.Time
	RacketCount int
	ShoeCount   int
}

// ActiveRuleSource lists the pricing rules that participate in a
// calculation. Implemented by the rules repository and by the redis
// cache wrapped around it.
type ActiveRuleSource interface {
	ListActive(ctx context.Context) ([]models.PricingRule, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	PreviewPrice(ctx context.Context, req PreviewRequest) (*models.PriceBreakdown, error)
	ListBookings(ctx context.Context, date string) ([]models.BookingDetail, error)
}

// DefaultBookingService orchestrates availability checking, price
// calculation and persistence.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Courts    courtRepo.CourtRepository
	Coaches   coachRepo.CoachRepository
	Equipment equipmentRepo.EquipmentRepository
	Rules     ActiveRuleSource
	// Location is the facility time zone used for pricing and for the
	// calendar-day boundaries of the listing endpoint.
	Location *time.Location
}
