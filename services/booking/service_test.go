package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtbook/models"
)

func seedCourt(svc *DefaultBookingService) {
	svc.Courts = &fakeCourtRepo{courts: map[string]models.Court{
		"court-1": {ID: "court-1", Name: "Court 1", Type: models.CourtIndoor, BasePrice: 400},
	}}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		UserName:  "alice",
		CourtID:   "court-1",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()
	seedCourt(svc)

	t.Run("start after end", func(t *testing.T) {
		req := validRequest()
		req.StartTime, req.EndTime = req.EndTime, req.StartTime
		_, err := svc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("start equals end", func(t *testing.T) {
		req := validRequest()
		req.EndTime = req.StartTime
		_, err := svc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("unknown court", func(t *testing.T) {
		req := validRequest()
		req.CourtID = "missing"
		_, err := svc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})
}

func TestCreateBookingCoachPrecondition(t *testing.T) {
	svc, _ := newTestService()
	seedCourt(svc)
	svc.Coaches = &fakeCoachRepo{coaches: map[string]models.Coach{
		"coach-on":  {ID: "coach-on", Name: "On", IsAvailable: true},
		"coach-off": {ID: "coach-off", Name: "Off", IsAvailable: false},
	}}

	t.Run("administratively disabled coach", func(t *testing.T) {
		req := validRequest()
		req.CoachID = "coach-off"
		_, err := svc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, ErrCoachUnavailable)
	})

	t.Run("unknown coach", func(t *testing.T) {
		req := validRequest()
		req.CoachID = "missing"
		_, err := svc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, ErrCoachUnavailable)
	})

	t.Run("available coach books fine", func(t *testing.T) {
		req := validRequest()
		req.CoachID = "coach-on"
		booking, err := svc.CreateBooking(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "coach-on", booking.Resources.CoachID)
	})
}

func TestCreateBookingConflicts(t *testing.T) {
	svc, repo := newTestService()
	seedCourt(svc)

	first, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, first.Status)

	t.Run("overlapping court slot is rejected", func(t *testing.T) {
		req := validRequest()
		req.UserName = "bob"
		req.StartTime = at(10, 30)
		req.EndTime = at(11, 30)

		_, err := svc.CreateBooking(context.Background(), req)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ResourceCourt, conflict.Resource)
		// Rejected bookings are never persisted.
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("busy coach is rejected with a coach message", func(t *testing.T) {
		svc.Coaches = &fakeCoachRepo{coaches: map[string]models.Coach{
			"coach-1": {ID: "coach-1", IsAvailable: true},
		}}
		svc.Courts.(*fakeCourtRepo).courts["court-2"] = models.Court{ID: "court-2", Type: models.CourtOutdoor, BasePrice: 300}
		repo.bookings[0].Resources.CoachID = "coach-1"

		req := validRequest()
		req.CourtID = "court-2"
		req.CoachID = "coach-1"
		_, err := svc.CreateBooking(context.Background(), req)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ResourceCoach, conflict.Resource)
	})

	t.Run("exhausted equipment is rejected with an equipment message", func(t *testing.T) {
		svc.Equipment = &fakeEquipmentRepo{stock: map[models.EquipmentCategory]int{
			models.CategoryRacket: 1,
		}}
		repo.bookings[0].Resources.RacketCount = 1

		req := validRequest()
		req.CourtID = "court-2"
		req.RacketCount = 1
		_, err := svc.CreateBooking(context.Background(), req)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ResourceEquipment, conflict.Resource)
	})
}

func TestCreateBookingSnapshotsBreakdown(t *testing.T) {
	svc, repo := newTestService()
	seedCourt(svc)
	svc.Rules = &fakeRuleSource{rules: []models.PricingRule{weekendRule(100)}}

	req := validRequest()
	req.StartTime = saturdayMorning
	req.EndTime = saturdayMorning.Add(time.Hour)
	req.RacketCount = 2

	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, 100.0, booking.PricingBreakdown.WeekendFee)
	assert.Equal(t, 10.0, booking.PricingBreakdown.EquipmentFee)
	assert.Equal(t, 510.0, booking.PricingBreakdown.Total)

	// The persisted document carries the same snapshot.
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, booking.PricingBreakdown, repo.bookings[0].PricingBreakdown)
}

func TestPreviewPrice(t *testing.T) {
	svc, repo := newTestService()
	seedCourt(svc)
	svc.Rules = &fakeRuleSource{rules: []models.PricingRule{peakRule(18, 21, 1.5)}}

	t.Run("unknown court", func(t *testing.T) {
		_, err := svc.PreviewPrice(context.Background(), PreviewRequest{CourtID: "missing", StartTime: mondayEvening})
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("returns a breakdown without persisting", func(t *testing.T) {
		breakdown, err := svc.PreviewPrice(context.Background(), PreviewRequest{
			CourtID:   "court-1",
			StartTime: mondayEvening,
		})
		require.NoError(t, err)
		assert.Equal(t, 600.0, breakdown.Total)
		assert.Empty(t, repo.bookings)
	})

	t.Run("ignores existing conflicts", func(t *testing.T) {
		repo.bookings = []models.Booking{
			confirmedBooking("court-1", mondayEvening, mondayEvening.Add(time.Hour), 0, 0, ""),
		}
		_, err := svc.PreviewPrice(context.Background(), PreviewRequest{CourtID: "court-1", StartTime: mondayEvening})
		assert.NoError(t, err)
	})
}

func TestListBookings(t *testing.T) {
	svc, repo := newTestService()
	seedCourt(svc)
	svc.Coaches = &fakeCoachRepo{coaches: map[string]models.Coach{
		"coach-1": {ID: "coach-1", Name: "Casey", IsAvailable: true},
	}}

	repo.bookings = []models.Booking{
		confirmedBooking("court-1", at(10, 0), at(11, 0), 0, 0, "coach-1"),
		confirmedBooking("court-1", at(10, 0).AddDate(0, 0, 1), at(11, 0).AddDate(0, 0, 1), 0, 0, ""),
	}

	t.Run("filters by calendar day and populates references", func(t *testing.T) {
		details, err := svc.ListBookings(context.Background(), "2025-06-16")
		require.NoError(t, err)
		require.Len(t, details, 1)
		require.NotNil(t, details[0].Court)
		assert.Equal(t, "Court 1", details[0].Court.Name)
		require.NotNil(t, details[0].Coach)
		assert.Equal(t, "Casey", details[0].Coach.Name)
	})

	t.Run("empty date lists everything", func(t *testing.T) {
		details, err := svc.ListBookings(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, details, 2)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.ListBookings(context.Background(), "16-06-2025")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
