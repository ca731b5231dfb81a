package booking

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"courtbook/models"
)

// AvailabilityResult reports, per resource type, whether the requested
// interval is free.
type AvailabilityResult struct {
	CourtFree     bool `json:"courtFree"`
	CoachFree     bool `json:"coachFree"`
	EquipmentFree bool `json:"equipmentFree"`
}

// checkAvailability runs the three resource checks concurrently; they
// are independent reads with no ordering dependency. coachID may be
// empty, in which case the coach check is vacuously true.
//
// The result is not re-verified inside a transaction, so two racing
// requests for the same slot can both pass and both commit. Accepted
// best-effort semantics; a storage-layer non-overlap constraint or a
// serializable read-then-insert would close the gap.
func (s *DefaultBookingService) checkAvailability(ctx context.Context, courtID, coachID string, start, end time.Time, rackets, shoes int) (AvailabilityResult, error) {
	result := AvailabilityResult{CourtFree: true, CoachFree: true, EquipmentFree: true}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		conflict, err := s.Bookings.HasCourtConflict(gctx, courtID, start, end)
		if err != nil {
			return err
		}
		result.CourtFree = !conflict
		return nil
	})

	g.Go(func() error {
		if coachID == "" {
			return nil
		}
		conflict, err := s.Bookings.HasCoachConflict(gctx, coachID, start, end)
		if err != nil {
			return err
		}
		result.CoachFree = !conflict
		return nil
	})

	g.Go(func() error {
		free, err := s.equipmentAvailable(gctx, start, end, rackets, shoes)
		if err != nil {
			return err
		}
		result.EquipmentFree = free
		return nil
	})

	if err := g.Wait(); err != nil {
		return AvailabilityResult{}, err
	}
	return result, nil
}

// equipmentAvailable checks requested demand against the shared pool:
// demand already committed by overlapping confirmed bookings plus the
// request must fit within totalStock, per category. A category with no
// catalog row is unconstrained.
func (s *DefaultBookingService) equipmentAvailable(ctx context.Context, start, end time.Time, rackets, shoes int) (bool, error) {
	stock, err := s.Equipment.StockByCategory(ctx)
	if err != nil {
		return false, err
	}

	overlapping, err := s.Bookings.ListConfirmedOverlapping(ctx, start, end)
	if err != nil {
		return false, err
	}

	var usedRackets, usedShoes int
	for _, b := range overlapping {
		usedRackets += b.Resources.RacketCount
		usedShoes += b.Resources.ShoeCount
	}

	if total, ok := stock[models.CategoryRacket]; ok && usedRackets+rackets > total {
		return false, nil
	}
	if total, ok := stock[models.CategoryShoes]; ok && usedShoes+shoes > total {
		return false, nil
	}
	return true, nil
}
