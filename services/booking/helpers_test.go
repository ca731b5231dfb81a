package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

// fakeBookingRepo is an in-memory BookingRepository sharing the
// engine's overlap semantics via the Overlaps predicate.
type fakeBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) HasCourtConflict(_ context.Context, courtID string, start, end time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.Status == models.StatusConfirmed && Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) HasCoachConflict(_ context.Context, coachID string, start, end time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.Resources.CoachID == coachID && b.Status == models.StatusConfirmed && Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) ListConfirmedOverlapping(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.StatusConfirmed && Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByRange(_ context.Context, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if !b.StartTime.Before(from) && b.StartTime.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeCourtRepo struct {
	courts map[string]models.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id string) (*models.Court, error) {
	if court, ok := f.courts[id]; ok {
		return &court, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCourtRepo) List(_ context.Context) ([]models.Court, error) {
	var out []models.Court
	for _, c := range f.courts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourtRepo) Create(_ context.Context, court *models.Court) error {
	f.courts[court.ID] = *court
	return nil
}

type fakeCoachRepo struct {
	coaches map[string]models.Coach
}

func (f *fakeCoachRepo) GetByID(_ context.Context, id string) (*models.Coach, error) {
	if coach, ok := f.coaches[id]; ok {
		return &coach, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCoachRepo) List(_ context.Context) ([]models.Coach, error) {
	var out []models.Coach
	for _, c := range f.coaches {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCoachRepo) Create(_ context.Context, coach *models.Coach) error {
	f.coaches[coach.ID] = *coach
	return nil
}

func (f *fakeCoachRepo) ToggleAvailability(_ context.Context, id string) (*models.Coach, error) {
	coach, ok := f.coaches[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	coach.IsAvailable = !coach.IsAvailable
	f.coaches[id] = coach
	return &coach, nil
}

type fakeEquipmentRepo struct {
	stock map[models.EquipmentCategory]int
}

func (f *fakeEquipmentRepo) List(_ context.Context) ([]models.Equipment, error) {
	var out []models.Equipment
	for category, total := range f.stock {
		out = append(out, models.Equipment{ID: string(category), Name: string(category), TotalStock: total})
	}
	return out, nil
}

func (f *fakeEquipmentRepo) Create(_ context.Context, item *models.Equipment) error {
	if category, ok := models.CategoryForName(item.Name); ok {
		f.stock[category] = item.TotalStock
	}
	return nil
}

func (f *fakeEquipmentRepo) StockByCategory(_ context.Context) (map[models.EquipmentCategory]int, error) {
	return f.stock, nil
}

type fakeRuleSource struct {
	rules []models.PricingRule
}

func (f *fakeRuleSource) ListActive(_ context.Context) ([]models.PricingRule, error) {
	return f.rules, nil
}

// newTestService builds a service over empty fakes in UTC.
func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{}
	svc := &DefaultBookingService{
		Bookings:  bookings,
		Courts:    &fakeCourtRepo{courts: map[string]models.Court{}},
		Coaches:   &fakeCoachRepo{coaches: map[string]models.Coach{}},
		Equipment: &fakeEquipmentRepo{stock: map[models.EquipmentCategory]int{}},
		Rules:     &fakeRuleSource{},
		Location:  time.UTC,
	}
	return svc, bookings
}
